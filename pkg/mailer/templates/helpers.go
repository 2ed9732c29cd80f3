package templates

import (
	"time"

	"github.com/oksasatya/student-planner-api/config"
	"github.com/oksasatya/student-planner-api/internal/domain/entity"
)

const timeLayout = "02 January 2006, 15:04 MST"

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option { return func(d *EmailData) { d.TimeAt = t.UTC() } }

// WithLocation sets the zone used for every human readable time; nil means UTC.
func WithLocation(loc *time.Location) Option { return func(d *EmailData) { d.loc = loc } }

func (d *EmailData) location() *time.Location {
	if d.loc == nil {
		return time.UTC
	}
	return d.loc
}

// NewBaseEmailData fills the common fields from config, then applies the options.
func NewBaseEmailData(cfg *config.Config, typ string, name, email, recipient string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		Email:          email,
		RecipientEmail: recipient,
		Type:           typ,
	}
	if cfg != nil {
		d.CompanyName = cfg.CompanyName
		d.CompanyAddress = cfg.CompanyAddress
		d.AppName = cfg.AppName
		d.LogoURL = cfg.LogoURL
		d.SupportURL = cfg.SupportURL
		d.PrivacyURL = cfg.PrivacyURL
		d.UnsubscribeURL = cfg.UnsubscribeURL
	}
	for _, opt := range opts {
		opt(&d)
	}
	if !d.TimeAt.IsZero() {
		d.Time = d.TimeAt.In(d.location()).Format(timeLayout)
	}
	return d
}

func NewOverdueDigestData(cfg *config.Config, name, email string, tasks []entity.Task, opts ...Option) map[string]any {
	d := NewBaseEmailData(cfg, OverdueDigest, name, email, email, opts...)
	d.Tasks = make([]DigestTask, 0, len(tasks))
	for _, t := range tasks {
		d.Tasks = append(d.Tasks, DigestTask{
			Title:        t.Title,
			Subject:      t.Subject,
			Priority:     string(t.Priority),
			DeadlineText: t.Deadline.In(d.location()).Format(timeLayout),
		})
	}
	d.OverdueCount = len(d.Tasks)
	return ToMap(d)
}
