package catalog

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"go.uber.org/zap"

	"kodevidecamp/internal/helper"
	"kodevidecamp/internal/metrics"
	"kodevidecamp/internal/models"
	"kodevidecamp/internal/store"
)

const (
	MaxTitleLen       = 255
	MaxDescriptionLen = 3000
)

type NoticeService struct {
	mu   sync.Mutex
	doc  *store.Document[models.Notice]
	opts serviceOptions
}

func NewNoticeService(doc *store.Document[models.Notice], opts ...Option) *NoticeService {
	return &NoticeService{doc: doc, opts: buildOptions(opts)}
}

func (s *NoticeService) All(ctx context.Context) ([]models.Notice, error) {
	return s.doc.Load(ctx)
}

func (s *NoticeService) List(ctx context.Context, query string) (Listing[models.Notice], error) {
	all, err := s.doc.Load(ctx)
	if err != nil {
		return Listing[models.Notice]{}, err
	}
	return newListing(all, VisibleNotices(all, query)), nil
}

func (s *NoticeService) Get(ctx context.Context, id int64) (models.Notice, error) {
	all, err := s.doc.Load(ctx)
	if err != nil {
		return models.Notice{}, err
	}
	i := indexOf(all, id)
	if i < 0 {
		return models.Notice{}, ErrNotFound
	}
	return all[i], nil
}

func (s *NoticeService) Create(ctx context.Context, req models.CreateNoticeRequest) (models.Notice, error) {
	notice, err := s.validate(req)
	if err != nil {
		return models.Notice{}, err
	}

	if notice, err = s.insert(ctx, notice); err != nil {
		return models.Notice{}, err
	}

	s.opts.log.Info("notice created", zap.Int64("id", notice.ID), zap.Int("images", len(notice.Images)))
	s.changed("create")
	return notice, nil
}

func (s *NoticeService) insert(ctx context.Context, notice models.Notice) (models.Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.doc.Load(ctx)
	if err != nil {
		return models.Notice{}, err
	}

	now := s.opts.now()
	notice.ID = nextID(all, now)
	notice.Date = helper.DisplayDate(now)
	notice.Timestamp = now.UnixMilli()

	if err := s.doc.Save(ctx, prepend(all, notice)); err != nil {
		s.opts.log.Error("save notice failed", zap.Error(err))
		return models.Notice{}, err
	}
	return notice, nil
}

func (s *NoticeService) Delete(ctx context.Context, id int64) (deleted bool, err error) {
	if deleted, err = s.remove(ctx, id); err != nil || !deleted {
		return false, err
	}

	s.opts.log.Info("notice deleted", zap.Int64("id", id))
	s.changed("delete")
	return true, nil
}

func (s *NoticeService) remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.doc.Load(ctx)
	if err != nil {
		return false, err
	}

	rest, removed := removeID(all, id)
	if !removed {
		return false, nil
	}
	if err := s.doc.Save(ctx, rest); err != nil {
		s.opts.log.Error("save notice failed", zap.Error(err))
		return false, err
	}
	return true, nil
}

func (s *NoticeService) Replace(ctx context.Context, notices []models.Notice) error {
	s.mu.Lock()
	err := s.doc.Save(ctx, notices)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.changed("replace")
	return nil
}

func (s *NoticeService) changed(op string) {
	metrics.Mutation("notice", op)
	s.opts.publish(TopicNoticeChanged)
}

func (s *NoticeService) validate(req models.CreateNoticeRequest) (models.Notice, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(strings.ReplaceAll(req.Description, "\r\n", "\n"))

	if title == "" {
		return models.Notice{}, invalid("title", "제목을 입력해주세요.")
	}
	if len(req.Images) == 0 {
		return models.Notice{}, invalid("images", "최소 하나의 이미지를 업로드해주세요.")
	}
	if utf8.RuneCountInString(title) > MaxTitleLen {
		return models.Notice{}, invalid("title", "제목은 최대 255자까지 입력할 수 있습니다.")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLen {
		return models.Notice{}, invalid("description", "내용은 최대 3000자까지 입력할 수 있습니다.")
	}

	images := make([]models.NoticeImage, 0, len(req.Images))
	for _, img := range req.Images {
		if err := checkDataURL(img.Src); err != nil {
			return models.Notice{}, err
		}
		alt := strings.TrimSpace(img.Alt)
		if alt == "" {
			alt = title
		}
		images = append(images, models.NoticeImage{Src: img.Src, Alt: alt})
	}

	return models.Notice{Title: title, Description: description, Images: images}, nil
}
