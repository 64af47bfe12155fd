package catalog

import (
	"encoding/base64"
	"strings"

	"kodevidecamp/internal/models"
)

// MaxImageSize is the largest decoded image payload accepted per image.
const MaxImageSize = 5 * 1024 * 1024

var (
	errNotImage    = invalid("images", "이미지 파일만 업로드 가능합니다.")
	errImageTooBig = invalid("images", "파일 크기는 5MB 이하여야 합니다.")
)

// ImageFromUpload turns an uploaded file into an embedded data URL image.
func ImageFromUpload(contentType, fileName string, data []byte) (models.NoticeImage, error) {
	contentType = strings.TrimSpace(strings.ToLower(contentType))
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	if !strings.HasPrefix(contentType, "image/") {
		return models.NoticeImage{}, errNotImage
	}
	if len(data) > MaxImageSize {
		return models.NoticeImage{}, errImageTooBig
	}

	return models.NoticeImage{
		Src: "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data),
		Alt: fileName,
	}, nil
}

// checkDataURL accepts only base64 image data URLs up to MaxImageSize.
func checkDataURL(src string) error {
	rest, ok := strings.CutPrefix(src, "data:")
	if !ok {
		return errNotImage
	}
	meta, payload, ok := strings.Cut(rest, ",")
	if !ok || !strings.HasPrefix(meta, "image/") || !strings.HasSuffix(meta, ";base64") {
		return errNotImage
	}
	if base64.StdEncoding.DecodedLen(len(payload)) > MaxImageSize+2 {
		return errImageTooBig
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return errNotImage
	}
	if len(data) > MaxImageSize {
		return errImageTooBig
	}
	return nil
}
