package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// StringList stores an ordered list of names as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return errors.New("unsupported type for StringList")
}

// RSVP is one attendance confirmation submitted by a guest.
// AdditionalAdults has num_adults-1 entries (the lead guest is not listed);
// ChildrenNames has num_children entries.
type RSVP struct {
	ID               uint       `gorm:"primaryKey" json:"id"`
	Name             string     `gorm:"size:255;not null" json:"name"`
	WillAttend       bool       `gorm:"not null" json:"will_attend"`
	Email            string     `gorm:"size:255;not null" json:"email"`
	Phone            string     `gorm:"size:20;not null" json:"phone"`
	NumAdults        int        `gorm:"not null;default:1" json:"num_adults"`
	NumChildren      int        `gorm:"not null;default:0" json:"num_children"`
	AdditionalAdults StringList `gorm:"type:json" json:"additional_adults"`
	ChildrenNames    StringList `gorm:"type:json" json:"children_names"`
	Observations     string     `gorm:"type:text" json:"observations"`
	CreatedAt        time.Time  `json:"created_at"`
}

func (RSVP) TableName() string {
	return "rsvps"
}
