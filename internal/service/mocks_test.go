package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/yourusername/assessment-api/internal/domain/entity"
)

type MockUserTestRepo struct {
	mock.Mock
}

func (m *MockUserTestRepo) Create(ctx context.Context, test *entity.UserTest) error {
	return m.Called(ctx, test).Error(0)
}

func (m *MockUserTestRepo) MarkCompleted(ctx context.Context, testID uint) error {
	return m.Called(ctx, testID).Error(0)
}

func (m *MockUserTestRepo) GetByUUID(ctx context.Context, userID uint, uuid string) (*entity.UserTest, error) {
	args := m.Called(ctx, userID, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserTest), args.Error(1)
}

func (m *MockUserTestRepo) ListByUser(ctx context.Context, userID uint, limit, offset int) ([]entity.UserTest, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]entity.UserTest), args.Get(1).(int64), args.Error(2)
}

func (m *MockUserTestRepo) SoftDelete(ctx context.Context, userID uint, uuid string) error {
	return m.Called(ctx, userID, uuid).Error(0)
}

type MockAssessmentRepo struct {
	mock.Mock
}

func (m *MockAssessmentRepo) SaveScores(ctx context.Context, scores []entity.UserAssessmentScore) error {
	return m.Called(ctx, scores).Error(0)
}

func (m *MockAssessmentRepo) SaveResponse(ctx context.Context, response *entity.UserResponse) error {
	return m.Called(ctx, response).Error(0)
}

func (m *MockAssessmentRepo) ResponseByTest(ctx context.Context, userTestID uint) (*entity.UserResponse, error) {
	args := m.Called(ctx, userTestID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserResponse), args.Error(1)
}

func (m *MockAssessmentRepo) ScoresByUser(ctx context.Context, userID uint) ([]entity.UserAssessmentScore, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.UserAssessmentScore), args.Error(1)
}

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *entity.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil {
		user.ID = 99
	}
	return args.Error(0)
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) GetByUUID(ctx context.Context, uuid string) (*entity.User, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.User), args.Error(1)
}

type MockRoleRepo struct {
	mock.Mock
}

func (m *MockRoleRepo) GetByName(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Role), args.Error(1)
}

func (m *MockRoleRepo) Create(ctx context.Context, role *entity.Role) error {
	return m.Called(ctx, role).Error(0)
}

func (m *MockRoleRepo) AssignRole(ctx context.Context, userRole *entity.UserRole) error {
	return m.Called(ctx, userRole).Error(0)
}

type MockFeedbackRepo struct {
	mock.Mock
}

func (m *MockFeedbackRepo) Create(ctx context.Context, feedback *entity.UserFeedback) error {
	return m.Called(ctx, feedback).Error(0)
}

func (m *MockFeedbackRepo) GetByUUID(ctx context.Context, uuid string) (*entity.UserFeedback, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.UserFeedback), args.Error(1)
}

func (m *MockFeedbackRepo) ListPromoted(ctx context.Context) ([]entity.UserFeedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.UserFeedback), args.Error(1)
}

func (m *MockFeedbackRepo) ListAll(ctx context.Context) ([]entity.UserFeedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.UserFeedback), args.Error(1)
}

func (m *MockFeedbackRepo) Promote(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

// MockReferenceRepo only answers AssessmentTypeByUUID; the feedback flow needs nothing else
type MockReferenceRepo struct {
	mock.Mock
}

func (m *MockReferenceRepo) AssessmentTypeByUUID(ctx context.Context, uuid string) (*entity.AssessmentType, error) {
	args := m.Called(ctx, uuid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.AssessmentType), args.Error(1)
}

func (m *MockReferenceRepo) AssessmentTypeByName(context.Context, string) (*entity.AssessmentType, error) {
	panic("not used")
}
func (m *MockReferenceRepo) DimensionByName(context.Context, string) (*entity.Dimension, error) {
	panic("not used")
}
func (m *MockReferenceRepo) DimensionNames(context.Context, uint) ([]string, error) {
	panic("not used")
}
func (m *MockReferenceRepo) HollandCodeByCode(context.Context, string) (*entity.HollandCode, error) {
	panic("not used")
}
func (m *MockReferenceRepo) HollandKeyTraits(context.Context, uint) ([]string, error) {
	panic("not used")
}
func (m *MockReferenceRepo) PersonalityTypeByName(context.Context, string) (*entity.PersonalityType, error) {
	panic("not used")
}
func (m *MockReferenceRepo) PersonalityTraits(context.Context, uint) ([]entity.PersonalityTrait, error) {
	panic("not used")
}
func (m *MockReferenceRepo) PersonalityStrengths(context.Context, uint) ([]string, error) {
	panic("not used")
}
func (m *MockReferenceRepo) PersonalityWeaknesses(context.Context, uint) ([]string, error) {
	panic("not used")
}
func (m *MockReferenceRepo) ValueCategoryByName(context.Context, string) (*entity.ValueCategory, error) {
	panic("not used")
}
func (m *MockReferenceRepo) CareersByHollandCode(context.Context, uint) ([]string, error) {
	panic("not used")
}
func (m *MockReferenceRepo) CareersByPersonalityType(context.Context, uint) ([]string, error) {
	panic("not used")
}
func (m *MockReferenceRepo) CareersByValueCategory(context.Context, uint) ([]string, error) {
	panic("not used")
}

type MockCacheRepo struct {
	mock.Mock
}

func (m *MockCacheRepo) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *MockCacheRepo) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCacheRepo) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *MockCacheRepo) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return m.Called(ctx, key, value, expiration).Error(0)
}

func (m *MockCacheRepo) GetJSON(ctx context.Context, key string, dest interface{}) error {
	return m.Called(ctx, key, dest).Error(0)
}
