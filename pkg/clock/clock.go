package clock

import "time"

// Clock текущее время в заданном часовом поясе; "сегодня" считается в нём же
type Clock struct {
	loc *time.Location
}

func New(loc *time.Location) *Clock {
	if loc == nil {
		loc = time.UTC
	}
	return &Clock{loc: loc}
}

func (c *Clock) Now() time.Time {
	return time.Now().In(c.loc)
}

// Fixed часы, всегда возвращающие одно и то же время (для тестов)
type Fixed struct {
	T time.Time
}

func (f *Fixed) Now() time.Time {
	return f.T
}
