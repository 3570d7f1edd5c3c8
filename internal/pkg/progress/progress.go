package progress

import (
	"bitbucket.org/adfreiburg/dehyph/internal/pkg/cmdapp"
)

//Counter logs batch progress every fixed number of steps
type Counter struct {
	every int
	count int
}

//New creates a Counter. every < 1 disables logging
func New(every int) *Counter {
	return &Counter{every: every}
}

//Inc advances the counter by one line
func (c *Counter) Inc() {
	c.count++
	if c.every > 0 && c.count%c.every == 0 {
		cmdapp.Log.Infof("Processed %d lines", c.count)
	}
}

//Count returns processed line count
func (c *Counter) Count() int {
	return c.count
}
