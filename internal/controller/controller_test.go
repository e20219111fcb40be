package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sync"
	"testing"
	"time"

	"consulta-ai-be/internal/entity"
	"consulta-ai-be/internal/pkg/serverutils"
	"consulta-ai-be/internal/pkg/token"
	"consulta-ai-be/internal/repository/contract"
	"consulta-ai-be/internal/repository/specification"
	"consulta-ai-be/internal/repository/unitofwork"
	"consulta-ai-be/internal/service"
	"consulta-ai-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// The routing tests run the real controllers, services and auth gate over
// in-memory repositories, with only the outbound LLM and image host stubbed.

type memUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
}

func (r *memUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *user
	r.users[user.Id] = &copied
	return nil
}

func (r *memUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		matched := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByID:
				if u.Id != s.ID {
					matched = false
				}
			case specification.ByEmail:
				if u.Email != s.Email {
					matched = false
				}
			}
		}
		if matched {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) UpdateNombre(ctx context.Context, id uuid.UUID, nombre string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.Nombre = nombre
	}
	return nil
}

func (r *memUserRepo) UpdateProfileImageURL(ctx context.Context, id uuid.UUID, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if u, ok := r.users[id]; ok {
		u.ProfileImageURL = url
	}
	return nil
}

type memMessageRepo struct {
	mu       sync.Mutex
	messages []*entity.Message
	nextId   int64
}

func (r *memMessageRepo) Append(ctx context.Context, message *entity.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextId++
	message.Id = r.nextId
	message.CreatedAt = time.Now()
	copied := *message
	r.messages = append(r.messages, &copied)
	return nil
}

func (r *memMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []*entity.Message
	for _, m := range r.messages {
		owned := true
		for _, spec := range specs {
			if s, ok := spec.(specification.OwnedBy); ok && m.UserId != s.UserID {
				owned = false
			}
		}
		if owned {
			copied := *m
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *memMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

type memUnitOfWork struct {
	users    *memUserRepo
	messages *memMessageRepo
}

func (u *memUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *memUnitOfWork) Commit() error                   { return nil }
func (u *memUnitOfWork) Rollback() error                 { return nil }

func (u *memUnitOfWork) UserRepository() contract.UserRepository       { return u.users }
func (u *memUnitOfWork) MessageRepository() contract.MessageRepository { return u.messages }

type memFactory struct {
	uow *memUnitOfWork
}

func (f *memFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

type llmStub struct {
	mu    sync.Mutex
	reply string
	err   error
	calls [][]llm.Message
}

func (s *llmStub) Chat(ctx context.Context, history []llm.Message) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, history)
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

func (s *llmStub) Generate(ctx context.Context, prompt string) (string, error) {
	return s.Chat(ctx, []llm.Message{{Role: "user", Content: prompt}})
}

type uploaderStub struct {
	url string
	err error
}

func (s *uploaderStub) Upload(ctx context.Context, data []byte, mimeType string) (string, error) {
	return s.url, s.err
}

type noErrLogger struct{}

func (noErrLogger) Debug(module, message string, details map[string]interface{}) {}
func (noErrLogger) Info(module, message string, details map[string]interface{})  {}
func (noErrLogger) Warn(module, message string, details map[string]interface{})  {}
func (noErrLogger) Error(module, message string, details map[string]interface{}) {}
func (noErrLogger) Sync() error                                                  { return nil }

type testApp struct {
	app      *fiber.App
	users    *memUserRepo
	messages *memMessageRepo
	llm      *llmStub
	uploader *uploaderStub
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	factory := &memFactory{uow: &memUnitOfWork{
		users:    &memUserRepo{users: make(map[uuid.UUID]*entity.User)},
		messages: &memMessageRepo{},
	}}
	log := noErrLogger{}
	tokens := token.NewManager("test-secret", time.Hour)
	gate := serverutils.NewAuthGate(tokens, factory)

	llmProvider := &llmStub{reply: "stubbed reply"}
	up := &uploaderStub{url: "https://res.example.com/perfiles/foto.png"}

	authController := NewAuthController(service.NewAuthService(factory, tokens, log))
	userController := NewUserController(service.NewUserService(factory, up, log))
	chatController := NewChatController(service.NewChatService(factory, llmProvider, log))

	app := fiber.New()
	api := app.Group("/api")
	authController.RegisterRoutes(api)
	userController.RegisterRoutes(api, gate.Middleware())
	chatController.RegisterRoutes(api, gate.Middleware())

	return &testApp{
		app:      app,
		users:    factory.uow.users,
		messages: factory.uow.messages,
		llm:      llmProvider,
		uploader: up,
	}
}

// request issues an HTTP call with an optional bearer token and decodes a
// JSON object body into a map. Array bodies stay available on resp.Body.
func (ta *testApp) request(t *testing.T, method, path, bearer string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	}

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded map[string]interface{}
	if len(raw) > 0 && raw[0] == '{' {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	resp.Body = io.NopCloser(bytes.NewReader(raw))
	return resp, decoded
}

func (ta *testApp) registerAndLogin(t *testing.T, nombre, email, password string) string {
	t.Helper()
	resp, _ := ta.request(t, fiber.MethodPost, "/api/register", "", map[string]string{
		"nombre": nombre, "email": email, "password": password,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, body := ta.request(t, fiber.MethodPost, "/api/login", "", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	tok, _ := body["token"].(string)
	require.NotEmpty(t, tok)
	return tok
}

func multipartImage(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+filename+`"`)
	header.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}
