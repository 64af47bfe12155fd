package handler

import (
	"io"
	"mime/multipart"
	"strings"

	"kodevidecamp/internal/catalog"
	"kodevidecamp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// ListNotices - Public endpoint, ?search= filters the list
func (h *Handler) ListNotices(c *fiber.Ctx) error {
	listing, err := h.Notices.List(c.UserContext(), c.Query("search"))
	if err != nil {
		return h.fail(c, err, "공지사항을 불러오지 못했습니다.")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    listing,
	})
}

func (h *Handler) GetNotice(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}

	notice, err := h.Notices.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, "공지사항을 불러오지 못했습니다.")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    notice,
	})
}

// CreateNotice - Admin. JSON bodies carry images as data URLs, multipart
// forms carry them as files under "images".
func (h *Handler) CreateNotice(c *fiber.Ctx) error {
	var req models.CreateNoticeRequest

	if strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		form, err := c.MultipartForm()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "잘못된 요청입니다.",
			})
		}
		req.Title = firstValue(form.Value["title"])
		req.Description = firstValue(form.Value["description"])

		for _, fh := range form.File["images"] {
			img, err := readUpload(fh)
			if err != nil {
				return h.fail(c, err, "이미지를 읽지 못했습니다.")
			}
			req.Images = append(req.Images, img)
		}
	} else if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "잘못된 요청입니다.",
		})
	}

	notice, err := h.Notices.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err, "공지사항 저장에 실패했습니다.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "공지사항이 성공적으로 추가되었습니다.",
		"data":    notice,
	})
}

// DeleteNotice - Admin. Deleting an unknown id answers deleted=false
func (h *Handler) DeleteNotice(c *fiber.Ctx) error {
	id, ok := paramID(c)
	if !ok {
		return badID(c)
	}

	deleted, err := h.Notices.Delete(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err, "공지사항 삭제에 실패했습니다.")
	}

	resp := fiber.Map{
		"success": true,
		"deleted": deleted,
	}
	if deleted {
		resp["message"] = "공지사항이 삭제되었습니다."
	}
	return c.JSON(resp)
}

func firstValue(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

func readUpload(fh *multipart.FileHeader) (models.NoticeImage, error) {
	f, err := fh.Open()
	if err != nil {
		return models.NoticeImage{}, err
	}
	defer f.Close()

	// one byte over the limit is enough for ImageFromUpload to reject it
	data, err := io.ReadAll(io.LimitReader(f, catalog.MaxImageSize+1))
	if err != nil {
		return models.NoticeImage{}, err
	}
	return catalog.ImageFromUpload(fh.Header.Get(fiber.HeaderContentType), fh.Filename, data)
}
