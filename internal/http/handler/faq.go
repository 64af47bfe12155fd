package handler

import (
	"kodevidecamp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListFAQs - Public endpoint, ?search= and ?category= filter the list
func (h *Handler) ListFAQs(c *fiber.Ctx) error {
	listing, err := h.FAQs.List(c.UserContext(), c.Query("search"), c.Query("category", models.CategoryAll))
	if err != nil {
		return h.fail(c, err, "FAQ를 불러오지 못했습니다.")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    listing,
	})
}

func (h *Handler) GetFAQ(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}

	faq, err := h.FAQs.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, "FAQ를 불러오지 못했습니다.")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    faq,
	})
}

// CreateFAQ - Admin, accepts JSON or form fields. tags is comma separated
func (h *Handler) CreateFAQ(c *fiber.Ctx) error {
	var req models.CreateFAQRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "잘못된 요청입니다.",
		})
	}

	faq, err := h.FAQs.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err, "FAQ 저장에 실패했습니다.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "FAQ가 성공적으로 추가되었습니다.",
		"data":    faq,
	})
}

// DeleteFAQ - Admin. Deleting an unknown id answers deleted=false
func (h *Handler) DeleteFAQ(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}

	deleted, err := h.FAQs.Delete(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, "FAQ 삭제에 실패했습니다.")
	}

	resp := fiber.Map{
		"success": true,
		"deleted": deleted,
	}
	if deleted {
		resp["message"] = "FAQ가 삭제되었습니다."
	}
	return c.JSON(resp)
}

// FAQFeedback - Public, body {"helpful": true|false}
func (h *Handler) FAQFeedback(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}

	var req models.FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "잘못된 요청입니다.",
		})
	}

	faq, updated, err := h.FAQs.MarkFeedback(c.UserContext(), id, req.Helpful)
	if err != nil {
		return h.fail(c, err, "피드백 저장에 실패했습니다.")
	}

	resp := fiber.Map{
		"success": true,
		"updated": updated,
	}
	if updated {
		resp["message"] = "피드백이 등록되었습니다."
		resp["data"] = faq
	}
	return c.JSON(resp)
}
