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
	MaxQuestionLen = 255
	MaxAnswerLen   = 3000
)

// FAQService owns the FAQ document. Writes are read-modify-write of the
// whole document and are serialized by mu.
type FAQService struct {
	mu   sync.Mutex
	doc  *store.Document[models.FAQ]
	opts serviceOptions
}

func NewFAQService(doc *store.Document[models.FAQ], opts ...Option) *FAQService {
	return &FAQService{doc: doc, opts: buildOptions(opts)}
}

func (s *FAQService) All(ctx context.Context) ([]models.FAQ, error) {
	return s.doc.Load(ctx)
}

func (s *FAQService) List(ctx context.Context, query, category string) (Listing[models.FAQ], error) {
	all, err := s.doc.Load(ctx)
	if err != nil {
		return Listing[models.FAQ]{}, err
	}
	return newListing(all, VisibleFAQs(all, query, category)), nil
}

func (s *FAQService) Get(ctx context.Context, id int64) (models.FAQ, error) {
	all, err := s.doc.Load(ctx)
	if err != nil {
		return models.FAQ{}, err
	}
	i := indexOf(all, id)
	if i < 0 {
		return models.FAQ{}, ErrNotFound
	}
	return all[i], nil
}

// Create validates req and stores the new FAQ at the head of the document.
func (s *FAQService) Create(ctx context.Context, req models.CreateFAQRequest) (models.FAQ, error) {
	faq, err := s.validate(req)
	if err != nil {
		return models.FAQ{}, err
	}

	if faq, err = s.insert(ctx, faq); err != nil {
		return models.FAQ{}, err
	}

	s.opts.log.Info("faq created", zap.Int64("id", faq.ID), zap.String("category", faq.Category))
	s.changed("create")
	return faq, nil
}

func (s *FAQService) insert(ctx context.Context, faq models.FAQ) (models.FAQ, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.doc.Load(ctx)
	if err != nil {
		return models.FAQ{}, err
	}

	now := s.opts.now()
	faq.ID = nextID(all, now)
	faq.Date = helper.DisplayDate(now)
	faq.Timestamp = now.UnixMilli()

	if err := s.doc.Save(ctx, prepend(all, faq)); err != nil {
		s.opts.log.Error("save faq failed", zap.Error(err))
		return models.FAQ{}, err
	}
	return faq, nil
}

// Delete removes the FAQ with id. A missing id is not an error; deleted
// reports whether anything was removed.
func (s *FAQService) Delete(ctx context.Context, id int64) (deleted bool, err error) {
	if deleted, err = s.remove(ctx, id); err != nil || !deleted {
		return false, err
	}

	s.opts.log.Info("faq deleted", zap.Int64("id", id))
	s.changed("delete")
	return true, nil
}

func (s *FAQService) remove(ctx context.Context, id int64) (bool, error) {
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
		s.opts.log.Error("save faq failed", zap.Error(err))
		return false, err
	}
	return true, nil
}

// MarkFeedback adds one yes (positive) or no vote. A missing id is a no-op
// and reports updated=false.
func (s *FAQService) MarkFeedback(ctx context.Context, id int64, positive bool) (faq models.FAQ, updated bool, err error) {
	if faq, updated, err = s.vote(ctx, id, positive); err != nil || !updated {
		return models.FAQ{}, false, err
	}

	metrics.Vote(positive)
	s.changed("feedback")
	return faq, true, nil
}

func (s *FAQService) vote(ctx context.Context, id int64, positive bool) (models.FAQ, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.doc.Load(ctx)
	if err != nil {
		return models.FAQ{}, false, err
	}

	i := indexOf(all, id)
	if i < 0 {
		return models.FAQ{}, false, nil
	}
	if positive {
		all[i].Helpful.Yes++
	} else {
		all[i].Helpful.No++
	}

	if err := s.doc.Save(ctx, all); err != nil {
		s.opts.log.Error("save faq failed", zap.Error(err))
		return models.FAQ{}, false, err
	}
	return all[i], true, nil
}

// Replace overwrites the whole document, e.g. to seed it.
func (s *FAQService) Replace(ctx context.Context, faqs []models.FAQ) error {
	s.mu.Lock()
	err := s.doc.Save(ctx, faqs)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.changed("replace")
	return nil
}

// changed runs after mu is released.
func (s *FAQService) changed(op string) {
	metrics.Mutation("faq", op)
	s.opts.publish(TopicFAQChanged)
}

func (s *FAQService) validate(req models.CreateFAQRequest) (models.FAQ, error) {
	category := strings.TrimSpace(req.Category)
	priority := strings.TrimSpace(req.Priority)
	question := strings.TrimSpace(req.Question)
	answer := strings.TrimSpace(strings.ReplaceAll(req.Answer, "\r\n", "\n"))

	if category == "" || question == "" || answer == "" {
		return models.FAQ{}, invalid("required", "모든 필수 항목을 입력해주세요.")
	}
	if !models.IsCategory(category) {
		return models.FAQ{}, invalid("category", "올바르지 않은 카테고리입니다.")
	}
	if priority == "" {
		priority = models.PriorityNormal
	}
	if !models.IsPriority(priority) {
		return models.FAQ{}, invalid("priority", "올바르지 않은 우선순위입니다.")
	}
	if utf8.RuneCountInString(question) > MaxQuestionLen {
		return models.FAQ{}, invalid("question", "질문은 최대 255자까지 입력할 수 있습니다.")
	}
	if utf8.RuneCountInString(answer) > MaxAnswerLen {
		return models.FAQ{}, invalid("answer", "답변은 최대 3000자까지 입력할 수 있습니다.")
	}

	return models.FAQ{
		Category: category,
		Priority: priority,
		Question: question,
		Answer:   answer,
		Tags:     ParseTags(req.Tags),
		Helpful:  models.Helpful{},
	}, nil
}

// ParseTags splits comma separated tag input. Blank entries are dropped.
func ParseTags(raw string) []string {
	tags := []string{}
	for _, part := range strings.Split(raw, ",") {
		if tag := strings.TrimSpace(part); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}
