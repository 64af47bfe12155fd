package catalog

import (
	"sync"
	"testing"
	"time"

	"kodevidecamp/internal/models"
	"kodevidecamp/internal/seed"
	"kodevidecamp/internal/store"
)

var fixedNow = time.Date(2025, time.March, 3, 1, 2, 3, 0, time.UTC)

func clock() time.Time { return fixedNow }

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *recordingPublisher) Publish(topic string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
}

func (p *recordingPublisher) Topics() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string{}, p.topics...)
}

func newFAQService(t *testing.T, slot store.Slot) (*FAQService, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	doc := store.NewDocument[models.FAQ](slot, "kodevidecamp_faqs", seed.BuiltinAt(clock).FAQs)
	return NewFAQService(doc, WithClock(clock), WithPublisher(pub)), pub
}

func newNoticeService(t *testing.T, slot store.Slot) (*NoticeService, *recordingPublisher) {
	t.Helper()
	pub := &recordingPublisher{}
	doc := store.NewDocument[models.Notice](slot, "kodevidecamp_notices", seed.BuiltinAt(clock).Notices)
	return NewNoticeService(doc, WithClock(clock), WithPublisher(pub)), pub
}

func ids[T record](records []T) []int64 {
	out := make([]int64, len(records))
	for i, r := range records {
		out[i] = r.RecordID()
	}
	return out
}
