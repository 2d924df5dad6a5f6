package listing

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxTextLen bounds company, title and location (characters).
	MaxTextLen = 256
	// MaxSkillsLen bounds the free-text skills field (characters).
	MaxSkillsLen = 4096
)

// Listing is a job listing (immutable value object).
type Listing struct {
	id            string
	seq           int64
	company       string
	title         string
	minExperience int
	skills        string
	location      string
	createdAt     int64
}

// New validates and creates a Listing.
// Company and title are required, min experience must be non-negative.
// Seq is assigned by the store on insert.
func New(id, company, title string, minExperience int, skills, location string) (Listing, error) {
	company = strings.TrimSpace(company)
	title = strings.TrimSpace(title)
	skills = strings.TrimSpace(skills)
	location = strings.TrimSpace(location)

	if id == "" {
		return Listing{}, fmt.Errorf("listing ID is required")
	}
	if company == "" {
		return Listing{}, fmt.Errorf("company is required")
	}
	if title == "" {
		return Listing{}, fmt.Errorf("title is required")
	}
	if minExperience < 0 {
		return Listing{}, fmt.Errorf("min experience must be non-negative, got %d", minExperience)
	}
	for name, v := range map[string]string{"company": company, "title": title, "location": location} {
		if utf8.RuneCountInString(v) > MaxTextLen {
			return Listing{}, fmt.Errorf("%s too long (max %d)", name, MaxTextLen)
		}
	}
	if utf8.RuneCountInString(skills) > MaxSkillsLen {
		return Listing{}, fmt.Errorf("skills too long (max %d)", MaxSkillsLen)
	}

	return Listing{
		id:            id,
		company:       company,
		title:         title,
		minExperience: minExperience,
		skills:        skills,
		location:      location,
		createdAt:     time.Now().UnixMilli(),
	}, nil
}

// Reconstruct creates a Listing without validation (storage hydration).
func Reconstruct(
	id string, seq int64, company, title string, minExperience int,
	skills, location string, createdAt int64,
) Listing {
	if minExperience < 0 {
		minExperience = 0
	}
	return Listing{
		id:            id,
		seq:           seq,
		company:       company,
		title:         title,
		minExperience: minExperience,
		skills:        skills,
		location:      location,
		createdAt:     createdAt,
	}
}

// WithSeq returns a copy carrying the store-assigned insertion sequence.
func (l Listing) WithSeq(seq int64) Listing {
	l.seq = seq
	return l
}

// ID returns the opaque listing identifier.
func (l Listing) ID() string { return l.id }

// Seq returns the insertion sequence that orders store snapshots.
func (l Listing) Seq() int64 { return l.seq }

// Company returns the hiring company.
func (l Listing) Company() string { return l.company }

// Title returns the job title.
func (l Listing) Title() string { return l.title }

// MinExperience returns the required years of experience.
func (l Listing) MinExperience() int { return l.minExperience }

// Skills returns the comma-or-space separated skills text.
func (l Listing) Skills() string { return l.skills }

// Location returns the location, empty when unknown.
func (l Listing) Location() string { return l.location }

// CreatedAt returns the creation timestamp (unix millis).
func (l Listing) CreatedAt() int64 { return l.createdAt }
