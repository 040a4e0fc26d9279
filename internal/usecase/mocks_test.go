package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/wekeepgrowing/project-planner/internal/adapter/repository/memory"
	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
)

// MockIdentityVerifier service.IdentityVerifier 목
type MockIdentityVerifier struct {
	mock.Mock
}

func (m *MockIdentityVerifier) Verify(ctx context.Context, token string) (*entity.IdentityClaims, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.IdentityClaims), args.Error(1)
}

// MockTaskGenerator service.TaskGenerator 목
type MockTaskGenerator struct {
	mock.Mock
}

func (m *MockTaskGenerator) Generate(ctx context.Context, req entity.GenerationRequest) ([]entity.GeneratedTask, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.GeneratedTask), args.Error(1)
}

// MockMailRepository repository.MailRepository 목
type MockMailRepository struct {
	mock.Mock
}

func (m *MockMailRepository) SendMail(ctx context.Context, to, subject, body string) error {
	return m.Called(ctx, to, subject, body).Error(0)
}

// MockEventPublisher repository.EventPublisher 목
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, event entity.Event) error {
	return m.Called(ctx, event).Error(0)
}

// fixture 하나의 메모리 저장소 위에 모든 유스케이스를 묶는다.
type fixture struct {
	repos    repository.Repositories
	tokens   *JWTTokenService
	auth     *AuthUsecase
	users    *UserUsecase
	projects *ProjectUsecase
	tasks    *TaskUsecase
	tags     *TagUsecase
}

func newFixture(t *testing.T, identity *MockIdentityVerifier, generator *MockTaskGenerator, notifier *Notifier) *fixture {
	t.Helper()
	logger := zap.NewNop()
	repos := memory.NewStore().Repositories()
	tokens := NewJWTTokenService("test-secret", 30*time.Second)

	f := &fixture{repos: repos, tokens: tokens}
	// typed nil 포인터 대신 인터페이스 자체를 nil로 둔다.
	if identity != nil {
		f.auth = NewAuthUsecase(repos.User, NewBcryptHasher(bcrypt.MinCost), tokens, identity, notifier, logger)
	} else {
		f.auth = NewAuthUsecase(repos.User, NewBcryptHasher(bcrypt.MinCost), tokens, nil, notifier, logger)
	}
	if generator != nil {
		f.projects = NewProjectUsecase(repos, generator, notifier, logger)
	} else {
		f.projects = NewProjectUsecase(repos, nil, notifier, logger)
	}
	f.users = NewUserUsecase(repos, logger)
	f.tasks = NewTaskUsecase(repos, notifier, logger)
	f.tags = NewTagUsecase(repos, logger)
	return f
}

// signup 비밀번호 사용자를 가입시키고 저장된 엔티티를 돌려준다.
func (f *fixture) signup(t *testing.T, name, email string) *entity.User {
	t.Helper()
	ctx := context.Background()
	_, err := f.auth.SignupNormal(ctx, SignupInput{Name: name, Email: email, Password: "secret-" + name})
	require.NoError(t, err)
	user, err := f.repos.User.FindByEmail(ctx, entity.NormalizeEmail(email))
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func (f *fixture) project(t *testing.T, owner *entity.User, name string) *entity.Project {
	t.Helper()
	p, err := f.projects.Create(context.Background(), owner, ProjectInput{
		Name:      name,
		Priority:  "high",
		DateStart: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return p
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
}
