package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-directory-portal/pkg/helpers"
	"github.com/oksasatya/go-directory-portal/pkg/mailer"
)

type jobSender interface {
	SendJob(ctx context.Context, job mailer.EmailJob) error
}

type outcome int

const (
	ack outcome = iota
	drop
	retry
)

// worker renders and sends one queued email job per message.
type worker struct {
	sender  jobSender
	appName string
	logger  *logrus.Logger
	timeout time.Duration
}

// handle decides what happens to a delivery: malformed or unrenderable jobs
// are dropped, send failures are requeued.
func (w *worker) handle(ctx context.Context, body []byte) outcome {
	var job mailer.EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		w.logger.WithError(err).Warn("bad message")
		return drop
	}
	if err := helpers.PrepareEmailJob(&job, w.appName); err != nil {
		w.logger.WithError(err).WithField("template", job.Template).Warn("render failed")
		return drop
	}

	c, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()
	if err := w.sender.SendJob(c, job); err != nil {
		w.logger.WithError(err).WithField("to", job.To).Warn("send failed")
		return retry
	}
	w.logger.WithFields(logrus.Fields{"to": job.To, "template": job.Template}).Info("email sent")
	return ack
}
