package main

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-directory-portal/pkg/mailer"
)

type fakeSender struct {
	sent []mailer.EmailJob
	err  error
}

func (f *fakeSender) SendJob(_ context.Context, job mailer.EmailJob) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, job)
	return nil
}

func newWorker(s jobSender) *worker {
	logger, _ := test.NewNullLogger()
	return &worker{sender: s, appName: "directory-portal", logger: logger, timeout: time.Second}
}

func TestHandle_SendsRenderedWelcome(t *testing.T) {
	s := &fakeSender{}
	body := []byte(`{"to":"ann@x.io","template":"welcome","data":{"Name":"Ann Lee","Username":"ann_lee"}}`)

	assert.Equal(t, ack, newWorker(s).handle(context.Background(), body))
	require.Len(t, s.sent, 1)
	assert.Equal(t, "ann@x.io", s.sent[0].To)
	assert.NotEmpty(t, s.sent[0].Subject)
	assert.Contains(t, s.sent[0].HTML, "Ann Lee")
}

func TestHandle_DropsBadMessages(t *testing.T) {
	s := &fakeSender{}
	w := newWorker(s)

	assert.Equal(t, drop, w.handle(context.Background(), []byte("{")))
	assert.Equal(t, drop, w.handle(context.Background(), []byte(`{"to":"a@b.co","template":"nope"}`)))
	assert.Empty(t, s.sent)
}

func TestHandle_RequeuesSendFailure(t *testing.T) {
	s := &fakeSender{err: errors.New("mailgun 503")}
	body := []byte(`{"to":"ann@x.io","template":"welcome","data":{"Name":"Ann Lee"}}`)
	assert.Equal(t, retry, newWorker(s).handle(context.Background(), body))
}
