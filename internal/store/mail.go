package store

import (
	"context"
	"time"
)

type mailJob struct {
	template string
	params   map[string]string
}

// enqueueMail hands a message to the background worker. The queue is
// bounded; when it is full the message is dropped with a log line, which
// matches the fire-and-forget contract of every email in the shop.
func (s *Store) enqueueMail(template string, params map[string]string) {
	if s.mailer == nil {
		return
	}
	select {
	case s.mailQueue <- mailJob{template: template, params: params}:
	default:
		s.errorLog.Println("mail queue full, dropping", template)
	}
}

func (s *Store) mailWorker() {
	for {
		select {
		case job := <-s.mailQueue:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			if err := s.mailer.Send(ctx, job.template, job.params); err != nil {
				s.errorLog.Println("email send failed:", err)
			}
			cancel()
		case <-s.done:
			return
		}
	}
}
