// Package seed holds the default FAQ and notice sequences shown when nothing
// has been stored yet.
package seed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"kodevidecamp/internal/models"
)

// Set is a pair of default sequences. A YAML seed file has the same shape:
//
//	faqs:
//	  - id: 1
//	    category: course
//	    ...
//	notices:
//	  - id: 1
//	    title: ...
type Set struct {
	FAQs    []models.FAQ    `yaml:"faqs"`
	Notices []models.Notice `yaml:"notices"`
}

// Defaults hands out fresh copies of the default sequences, so callers may
// mutate what they get.
type Defaults struct {
	set *Set
	now func() time.Time
}

// Builtin returns the site's built-in defaults. Timestamps are relative to
// the moment each copy is taken.
func Builtin() *Defaults {
	return BuiltinAt(time.Now)
}

// BuiltinAt is Builtin with timestamps taken from now.
func BuiltinAt(now func() time.Time) *Defaults {
	return &Defaults{now: now}
}

// FromFile reads defaults from a YAML seed file. Collections missing from the
// file keep the built-in defaults.
func FromFile(path string) (*Defaults, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var set Set
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("parse seed file %s: %w", path, err)
	}
	if err := validateIDs(set); err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return &Defaults{set: &set, now: time.Now}, nil
}

func (d *Defaults) FAQs() []models.FAQ {
	src := builtinFAQs(d.now())
	if d.set != nil && d.set.FAQs != nil {
		src = d.set.FAQs
	}

	out := make([]models.FAQ, len(src))
	for i, f := range src {
		f.Tags = append([]string{}, f.Tags...)
		out[i] = f
	}
	return out
}

func (d *Defaults) Notices() []models.Notice {
	src := builtinNotices(d.now())
	if d.set != nil && d.set.Notices != nil {
		src = d.set.Notices
	}

	out := make([]models.Notice, len(src))
	for i, n := range src {
		n.Images = append([]models.NoticeImage{}, n.Images...)
		out[i] = n
	}
	return out
}

func validateIDs(set Set) error {
	seen := make(map[int64]bool)
	for _, f := range set.FAQs {
		if f.ID <= 0 {
			return fmt.Errorf("faq %q has no positive id", f.Question)
		}
		if seen[f.ID] {
			return fmt.Errorf("duplicate faq id %d", f.ID)
		}
		seen[f.ID] = true
	}

	seen = make(map[int64]bool)
	for _, n := range set.Notices {
		if n.ID <= 0 {
			return fmt.Errorf("notice %q has no positive id", n.Title)
		}
		if seen[n.ID] {
			return fmt.Errorf("duplicate notice id %d", n.ID)
		}
		seen[n.ID] = true
	}
	return nil
}
