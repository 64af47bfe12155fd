package models

type NoticeImage struct {
	Src string `json:"src" yaml:"src"`
	Alt string `json:"alt" yaml:"alt"`
}

type Notice struct {
	ID          int64         `json:"id" yaml:"id"`
	Title       string        `json:"title" yaml:"title"`
	Description string        `json:"description" yaml:"description"`
	Images      []NoticeImage `json:"images" yaml:"images"`
	Date        string        `json:"date" yaml:"date"`
	Timestamp   int64         `json:"timestamp" yaml:"timestamp"`
}

func (n Notice) RecordID() int64 { return n.ID }

// Cover returns the first image, which the grid uses as the card image.
func (n Notice) Cover() NoticeImage {
	if len(n.Images) == 0 {
		return NoticeImage{}
	}
	return n.Images[0]
}

type CreateNoticeRequest struct {
	Title       string        `json:"title" form:"title"`
	Description string        `json:"description" form:"description"`
	Images      []NoticeImage `json:"images"`
}
