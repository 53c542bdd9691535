// filepath: internal/api/handlers/main_test.go
package handlers

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"recipehub/internal/config"
	"recipehub/internal/models"
	"recipehub/internal/repository"
	"recipehub/internal/services"
	"recipehub/internal/services/auth"
)

// --- MOCK AUDITOR ---
type MockAuditor struct {
	mock.Mock
}

var _ services.Auditor = (*MockAuditor)(nil)

func (m *MockAuditor) Log(ctx context.Context, action string, actor string, resource string, details map[string]interface{}) {
	m.Called(ctx, action, actor, resource, details)
}

// --- MOCK INFO SERVICE ---
type MockInfoService struct {
	mock.Mock
}

var _ services.InfoService = (*MockInfoService)(nil)

func (m *MockInfoService) GetInfo() models.Info {
	args := m.Called()
	return args.Get(0).(models.Info)
}

// --- MOCK USER SERVICE ---
type MockUserService struct {
	mock.Mock
}

var _ services.UserService = (*MockUserService)(nil)

func (m *MockUserService) Register(cArgs repository.UserCreateArgs) (*models.User, error) {
	args := m.Called(cArgs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserService) Authenticate(username, password string) (*models.User, error) {
	args := m.Called(username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserService) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockUserService) GetUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}
func (m *MockUserService) GetUserRecipes(username string) ([]models.Recipe, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}

// --- MOCK RECIPE SERVICE ---
type MockRecipeService struct {
	mock.Mock
}

var _ services.RecipeService = (*MockRecipeService)(nil)

func (m *MockRecipeService) SubmitRecipe(owner string, submission services.RecipeSubmission) (*models.Recipe, error) {
	args := m.Called(owner, submission)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Recipe), args.Error(1)
}
func (m *MockRecipeService) GetRecipe(id int64) (*models.RecipeDetail, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RecipeDetail), args.Error(1)
}
func (m *MockRecipeService) GetRecipes() ([]models.Recipe, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Recipe), args.Error(1)
}
func (m *MockRecipeService) GetIngredients() ([]models.Ingredient, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Ingredient), args.Error(1)
}
func (m *MockRecipeService) IngredientSuggestions(query string) ([]string, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockRecipeService) CategorySuggestions(query string) ([]string, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockRecipeService) CuisineSuggestions(query string) ([]string, error) {
	args := m.Called(query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// --- MOCK RATING SERVICE ---
type MockRatingService struct {
	mock.Mock
}

var _ services.RatingService = (*MockRatingService)(nil)

func (m *MockRatingService) RateRecipe(username string, recipeID int64, value int) error {
	args := m.Called(username, recipeID, value)
	return args.Error(0)
}
func (m *MockRatingService) RatingsForRecipe(recipeID int64) ([]models.Rating, error) {
	args := m.Called(recipeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Rating), args.Error(1)
}
func (m *MockRatingService) Aggregate(recipeID int64) (models.RatingSummary, error) {
	args := m.Called(recipeID)
	return args.Get(0).(models.RatingSummary), args.Error(1)
}

// --- MOCK SNAPSHOT SERVICE ---
type MockSnapshotService struct {
	mock.Mock
}

var _ services.SnapshotService = (*MockSnapshotService)(nil)

func (m *MockSnapshotService) Export(w io.Writer) error {
	args := m.Called(w)
	return args.Error(0)
}
func (m *MockSnapshotService) ExportToFile() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}
func (m *MockSnapshotService) Import() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockSnapshotService) ImportIfPresent() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockSnapshotService) Wipe() error {
	args := m.Called()
	return args.Error(0)
}

// --- MOCK TOKEN SERVICE ---
type MockTokenService struct {
	mock.Mock
}

var _ auth.TokenService = (*MockTokenService)(nil)

func (m *MockTokenService) GenerateTokens(user *models.User) (string, string, error) {
	args := m.Called(user)
	return args.String(0), args.String(1), args.Error(2)
}
func (m *MockTokenService) ValidateAccessToken(tokenString string) (*models.User, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockTokenService) ValidateRefreshToken(tokenString string) (*models.User, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}
func (m *MockTokenService) Logout(refreshToken string) error {
	args := m.Called(refreshToken)
	return args.Error(0)
}
func (m *MockTokenService) LogoutAll(username string) error {
	args := m.Called(username)
	return args.Error(0)
}

// testMocks bundles one mock per handler dependency.
type testMocks struct {
	Info     *MockInfoService
	User     *MockUserService
	Recipe   *MockRecipeService
	Rating   *MockRatingService
	Snapshot *MockSnapshotService
	Token    *MockTokenService
	Auditor  *MockAuditor
}

// newTestHandlers builds a Handlers instance backed entirely by mocks. The
// auditor accepts any event; tests assert on responses, not audit traffic.
func newTestHandlers() (*Handlers, *testMocks) {
	m := &testMocks{
		Info:     new(MockInfoService),
		User:     new(MockUserService),
		Recipe:   new(MockRecipeService),
		Rating:   new(MockRatingService),
		Snapshot: new(MockSnapshotService),
		Token:    new(MockTokenService),
		Auditor:  new(MockAuditor),
	}
	m.Auditor.On("Log", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

	h := NewHandlers(m.Info, m.User, m.Recipe, m.Rating, m.Snapshot, m.Token, m.Auditor, &config.Config{})
	return h, m
}
