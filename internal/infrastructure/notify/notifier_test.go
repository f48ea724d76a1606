package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/notes-api/config"
	"github.com/oksasatya/notes-api/internal/application"
	"github.com/oksasatya/notes-api/pkg/mailer"
)

type capturePublisher struct {
	got []any
	err error
}

func (p *capturePublisher) PublishJSON(ctx context.Context, body any) error {
	if _, ok := ctx.Deadline(); !ok {
		return errors.New("publish without deadline")
	}
	p.got = append(p.got, body)
	return p.err
}

type captureSender struct {
	jobs []mailer.EmailJob
	err  error
}

func (s *captureSender) SendJob(_ context.Context, job mailer.EmailJob) error {
	s.jobs = append(s.jobs, job)
	return s.err
}

var code = application.SignupCode{
	Name:      "Ann",
	Email:     "ann@x.com",
	Code:      "424242",
	ExpiresIn: 5 * time.Minute,
	IP:        "10.0.0.1",
}

func TestQueueNotifier_PublishesRenderableJob(t *testing.T) {
	pub := &capturePublisher{}
	n := NewQueueNotifier(&config.Config{AppName: "notes-api"}, pub)

	require.NoError(t, n.SendSignupCode(context.Background(), code))
	require.Len(t, pub.got, 1)

	job, ok := pub.got[0].(mailer.EmailJob)
	require.True(t, ok)
	assert.Equal(t, "ann@x.com", job.To)
	assert.Equal(t, "signup_otp", job.Template)

	_, text, _, err := job.Render()
	require.NoError(t, err)
	assert.Contains(t, text, "Your OTP is: 424242. It will expire in 5 minutes.")
}

func TestQueueNotifier_PublishError(t *testing.T) {
	n := NewQueueNotifier(nil, &capturePublisher{err: errors.New("channel closed")})
	err := n.SendSignupCode(context.Background(), code)
	assert.ErrorContains(t, err, "channel closed")

	assert.Error(t, NewQueueNotifier(nil, nil).SendSignupCode(context.Background(), code))
}

func TestMailgunNotifier(t *testing.T) {
	s := &captureSender{}
	n := NewMailgunNotifier(nil, s)
	require.NoError(t, n.SendSignupCode(context.Background(), code))
	require.Len(t, s.jobs, 1)
	assert.Equal(t, "424242", s.jobs[0].Data["Code"])

	s.err = errors.New("401")
	assert.Error(t, n.SendSignupCode(context.Background(), code))
}

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&buf)
	logger.SetFormatter(&logrus.JSONFormatter{})

	require.NoError(t, NewLogNotifier(logger).SendSignupCode(context.Background(), code))
	assert.Contains(t, buf.String(), `"code":"424242"`)
}
