package handler

import (
	"encoding/json"
	"fmt"
	"time"

	"kodevidecamp/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Export downloads both documents as one JSON file.
func (h *Handler) Export(c *fiber.Ctx) error {
	faqs, err := h.FAQs.All(c.UserContext())
	if err != nil {
		return h.fail(c, err, "FAQ를 불러오지 못했습니다.")
	}
	notices, err := h.Notices.All(c.UserContext())
	if err != nil {
		return h.fail(c, err, "공지사항을 불러오지 못했습니다.")
	}

	now := time.Now()
	body, err := json.MarshalIndent(models.Backup{ExportedAt: now, FAQs: faqs, Notices: notices}, "", "  ")
	if err != nil {
		return h.fail(c, err, "백업 파일을 만들지 못했습니다.")
	}

	fileName := fmt.Sprintf("kodevidecamp-backup-%s.json", now.Format("20060102-150405"))
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, fileName))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(body)
}
