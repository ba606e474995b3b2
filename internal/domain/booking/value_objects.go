package booking

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

var (
	ErrInvalidDate      = errors.New("date must be formatted as YYYY-MM-DD")
	ErrInvalidTimeOfDay = errors.New("time must be formatted as HH:MM")
	ErrInvalidInterval  = errors.New("start time must be before end time")
	ErrInvalidRoom      = errors.New("room number must be a positive 32-bit integer")
)

const (
	DateLayout      = "2006-01-02"
	timeOfDayLayout = "15:04"
	minutesPerDay   = 24 * 60
)

// Date is a calendar day with no zone. The zero value is invalid.
type Date struct {
	t time.Time
}

func NewDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{t: t}, nil
}

// DateOf truncates t to its calendar day as seen in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) Time() time.Time    { return d.t }
func (d Date) IsZero() bool       { return d.t.IsZero() }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }
func (d Date) String() string     { return d.t.Format(DateLayout) }
func (d Date) Before(o Date) bool { return d.t.Before(o.t) }

// DayNumber counts days since 1970-01-01 and keys per-day locks.
func (d Date) DayNumber() int32 {
	return int32(d.t.Unix() / 86400)
}

// TimeOfDay is a minute within a day, 00:00 through 23:59.
type TimeOfDay struct {
	minutes int
}

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(timeOfDayLayout, strings.TrimSpace(s))
	if err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}, nil
}

func TimeOfDayFromMinutes(m int) (TimeOfDay, error) {
	if m < 0 || m >= minutesPerDay {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: m}, nil
}

func (t TimeOfDay) Minutes() int            { return t.minutes }
func (t TimeOfDay) Before(o TimeOfDay) bool { return t.minutes < o.minutes }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// Interval is the half-open range [start, end) within one day.
type Interval struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewInterval(start, end TimeOfDay) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, ErrInvalidInterval
	}
	return Interval{start: start, end: end}, nil
}

func ParseInterval(start, end string) (Interval, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return Interval{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return Interval{}, err
	}
	return NewInterval(s, e)
}

func (i Interval) Start() TimeOfDay { return i.start }
func (i Interval) End() TimeOfDay   { return i.end }

func (i Interval) Duration() time.Duration {
	return time.Duration(i.end.minutes-i.start.minutes) * time.Minute
}

// Overlaps is the half-open test s1 < e2 && s2 < e1. Touching endpoints
// do not overlap.
func (i Interval) Overlaps(o Interval) bool {
	return i.start.minutes < o.end.minutes && o.start.minutes < i.end.minutes
}

func (i Interval) String() string {
	return fmt.Sprintf("[%s,%s)", i.start, i.end)
}

// Slot is a (room, date, interval) triple under consideration for booking.
type Slot struct {
	roomNumber int
	date       Date
	interval   Interval
}

func NewSlot(roomNumber int, date Date, interval Interval) (Slot, error) {
	if roomNumber <= 0 || roomNumber > math.MaxInt32 {
		return Slot{}, ErrInvalidRoom
	}
	if date.IsZero() {
		return Slot{}, ErrInvalidDate
	}
	return Slot{roomNumber: roomNumber, date: date, interval: interval}, nil
}

// ParseSlot validates raw request values in one step.
func ParseSlot(roomNumber int, date, start, end string) (Slot, error) {
	d, err := NewDate(date)
	if err != nil {
		return Slot{}, err
	}
	interval, err := ParseInterval(start, end)
	if err != nil {
		return Slot{}, err
	}
	return NewSlot(roomNumber, d, interval)
}

func (s Slot) RoomNumber() int    { return s.roomNumber }
func (s Slot) Date() Date         { return s.date }
func (s Slot) Interval() Interval { return s.interval }

func (s Slot) SameDay(o Slot) bool {
	return s.roomNumber == o.roomNumber && s.date.Equal(o.date)
}

func (s Slot) String() string {
	return fmt.Sprintf("room %d on %s %s", s.roomNumber, s.date, s.interval)
}
