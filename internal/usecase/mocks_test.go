package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/stretchr/testify/mock"

	"go-jobportal-client/internal/domain"
	"go-jobportal-client/pkg/logger"
)

func init() {
	logger.Init()
}

// memMirror is an in-memory stand-in for the sqlite mirror store.
type memMirror struct {
	data   map[string][]byte
	stored map[string]time.Time
}

func newMemMirror() *memMirror {
	return &memMirror{
		data:   make(map[string][]byte),
		stored: make(map[string]time.Time),
	}
}

func (m *memMirror) Read(key string) ([]byte, time.Time, bool) {
	payload, ok := m.data[key]
	if !ok {
		return nil, time.Time{}, false
	}
	return payload, m.stored[key], true
}

func (m *memMirror) Write(key string, payload []byte) error {
	m.data[key] = payload
	m.stored[key] = time.Now()
	return nil
}

func (m *memMirror) Clear(key string) error {
	delete(m.data, key)
	delete(m.stored, key)
	return nil
}

// signedIn seeds a session record so session-gated ops pass.
func signedIn(m *memMirror, email, role string) *Sessions {
	payload, _ := json.Marshal(&domain.Session{Email: email, Role: role, Token: "opaque-token"})
	_ = m.Write(domain.KeySession, payload)
	return NewSessions(m, nil)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) FetchAll(ctx context.Context) ([]domain.JobPosting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) FetchPublic(ctx context.Context) ([]domain.JobPosting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id domain.ID) (*domain.JobPosting, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobPosting), args.Error(1)
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.JobPosting) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id domain.ID) error {
	return m.Called(ctx, id).Error(0)
}

type MockApplicationRepo struct {
	mock.Mock
}

func (m *MockApplicationRepo) FetchAll(ctx context.Context) ([]domain.Application, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) FetchByUser(ctx context.Context, email string) ([]domain.Application, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Application), args.Error(1)
}

func (m *MockApplicationRepo) Create(ctx context.Context, app *domain.Application, resumeName string, resume []byte) error {
	return m.Called(ctx, app, resumeName, resume).Error(0)
}

func (m *MockApplicationRepo) UpdateStatus(ctx context.Context, id domain.ID, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *MockApplicationRepo) Delete(ctx context.Context, id domain.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockApplicationRepo) FetchResume(ctx context.Context, id domain.ID) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockBlogRepo struct {
	mock.Mock
}

func (m *MockBlogRepo) FetchAll(ctx context.Context, includeDrafts bool) ([]domain.BlogPost, error) {
	args := m.Called(ctx, includeDrafts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepo) GetByID(ctx context.Context, id domain.ID) (*domain.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepo) Create(ctx context.Context, post *domain.BlogPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockBlogRepo) Update(ctx context.Context, post *domain.BlogPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockBlogRepo) Delete(ctx context.Context, id domain.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockBlogRepo) SetFeatured(ctx context.Context, id domain.ID, featured bool) error {
	return m.Called(ctx, id, featured).Error(0)
}

func (m *MockBlogRepo) SetStatus(ctx context.Context, id domain.ID, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) FetchAll(ctx context.Context, email string) ([]domain.Notification, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Notification), args.Error(1)
}

func (m *MockNotificationRepo) Broadcast(ctx context.Context, title, message string) error {
	return m.Called(ctx, title, message).Error(0)
}

type MockProfileRepo struct {
	mock.Mock
}

func (m *MockProfileRepo) GetByEmail(ctx context.Context, email string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockProfileRepo) Create(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) Save(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

func (m *MockProfileRepo) UpdateCompletion(ctx context.Context, id domain.ID, percentage int) error {
	return m.Called(ctx, id, percentage).Error(0)
}

func (m *MockProfileRepo) UploadImage(ctx context.Context, id domain.ID, filename string, content []byte) (string, error) {
	args := m.Called(ctx, id, filename, content)
	return args.String(0), args.Error(1)
}

func (m *MockProfileRepo) UploadResume(ctx context.Context, id domain.ID, filename string, content []byte) (string, error) {
	args := m.Called(ctx, id, filename, content)
	return args.String(0), args.Error(1)
}

func (m *MockProfileRepo) FetchResume(ctx context.Context, id domain.ID) ([]byte, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

type MockAuthRepo struct {
	mock.Mock
}

func (m *MockAuthRepo) SignIn(ctx context.Context, email, password string) (*domain.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthRepo) SignUp(ctx context.Context, creds *domain.Credentials) (*domain.AuthResult, error) {
	args := m.Called(ctx, creds)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthRepo) GoogleSignIn(ctx context.Context, idToken string) (*domain.AuthResult, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuthResult), args.Error(1)
}

func (m *MockAuthRepo) ForgotPassword(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *MockAuthRepo) VerifyOTP(ctx context.Context, email, otp string) error {
	return m.Called(ctx, email, otp).Error(0)
}

func (m *MockAuthRepo) ResetPassword(ctx context.Context, email, otp, newPassword string) error {
	return m.Called(ctx, email, otp, newPassword).Error(0)
}

func (m *MockAuthRepo) GetUser(ctx context.Context, email string) (*domain.UserInfo, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserInfo), args.Error(1)
}
