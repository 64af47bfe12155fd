package handler

import (
	"bytes"

	"kodevidecamp/internal/models"
	"kodevidecamp/internal/render"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) sendHTML(c *fiber.Ctx, buf *bytes.Buffer) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Send(buf.Bytes())
}

// FAQListPage renders the FAQ list fragment for the current filter.
func (h *Handler) FAQListPage(c *fiber.Ctx) error {
	listing, err := h.FAQs.List(c.UserContext(), c.Query("search"), c.Query("category", models.CategoryAll))
	if err != nil {
		return h.fail(c, err, "FAQ를 불러오지 못했습니다.")
	}

	var buf bytes.Buffer
	if err := h.Renderer.FAQList(&buf, listing); err != nil {
		return h.fail(c, err, "FAQ 목록을 표시하지 못했습니다.")
	}
	return h.sendHTML(c, &buf)
}

// NoticeGridPage renders the notice grid, or the list layout with ?view=list.
func (h *Handler) NoticeGridPage(c *fiber.Ctx) error {
	query := c.Query("search")
	listing, err := h.Notices.List(c.UserContext(), query)
	if err != nil {
		return h.fail(c, err, "공지사항을 불러오지 못했습니다.")
	}

	layout := render.LayoutGrid
	if c.Query("view") == render.LayoutList {
		layout = render.LayoutList
	}

	var buf bytes.Buffer
	if err := h.Renderer.NoticeGrid(&buf, listing, query, layout); err != nil {
		return h.fail(c, err, "공지사항 목록을 표시하지 못했습니다.")
	}
	return h.sendHTML(c, &buf)
}

func (h *Handler) NoticeDetailPage(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}

	notice, err := h.Notices.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, "공지사항을 불러오지 못했습니다.")
	}

	var buf bytes.Buffer
	if err := h.Renderer.NoticeDetail(&buf, notice); err != nil {
		return h.fail(c, err, "공지사항을 표시하지 못했습니다.")
	}
	return h.sendHTML(c, &buf)
}
