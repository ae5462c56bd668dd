package redisbus

import (
	"errors"
	"sync"

	"github.com/garyburd/redigo/redis"
)

type command struct {
	name string
	args []interface{}
}

// fakeConn записывает команды и отдаёт заранее заданные ответы
type fakeConn struct {
	mu       sync.Mutex
	commands []command
	doErr    error

	replies chan interface{}
	closed  chan struct{}
	once    sync.Once
}

func newFakeConn() *fakeConn {
	return &fakeConn{
		replies: make(chan interface{}, 16),
		closed:  make(chan struct{}),
	}
}

func (c *fakeConn) record(name string, args []interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.commands = append(c.commands, command{name: name, args: args})
}

func (c *fakeConn) Commands() []command {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]command(nil), c.commands...)
}

func (c *fakeConn) Close() error {
	c.once.Do(func() { close(c.closed) })
	return nil
}

func (c *fakeConn) Err() error { return nil }

func (c *fakeConn) Do(name string, args ...interface{}) (interface{}, error) {
	if name == "" {
		return nil, nil
	}
	c.record(name, args)
	if c.doErr != nil {
		return nil, c.doErr
	}
	return int64(1), nil
}

func (c *fakeConn) Send(name string, args ...interface{}) error {
	c.record(name, args)
	return nil
}

func (c *fakeConn) Flush() error { return nil }

func (c *fakeConn) Receive() (interface{}, error) {
	select {
	case r := <-c.replies:
		return r, nil
	case <-c.closed:
		return nil, errors.New("connection closed")
	}
}

func (c *fakeConn) push(kind, channel string, payload interface{}) {
	c.replies <- []interface{}{[]byte(kind), []byte(channel), payload}
}

type fakeSource struct{ conn *fakeConn }

func (s fakeSource) Get() redis.Conn { return s.conn }
