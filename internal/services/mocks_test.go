package services_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/K-Daksh/NewWebsiteCracked-sub000/internal/models"
)

// Моки репозиториев для тестов сервисов.

// MockVersionRepository — мок для VersionRepository.
type MockVersionRepository struct {
	mock.Mock
}

func (m *MockVersionRepository) GetVersion(ctx context.Context) (*models.VersionRecord, error) {
	args := m.Called(ctx)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.(*models.VersionRecord), args.Error(1)
}

func (m *MockVersionRepository) BumpVersion(
	ctx context.Context,
	changeType, description, actor string,
) (*models.VersionRecord, error) {
	args := m.Called(ctx, changeType, description, actor)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.(*models.VersionRecord), args.Error(1)
}

// MockAdminRepository — мок для AdminRepository.
type MockAdminRepository struct {
	mock.Mock
}

func (m *MockAdminRepository) CreateAdmin(ctx context.Context, admin *models.Admin) (int64, error) {
	args := m.Called(ctx, admin)
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAdminRepository) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	args := m.Called(ctx, username)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.(*models.Admin), args.Error(1)
}

func (m *MockAdminRepository) CountAdmins(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return args.Get(0).(int), args.Error(1)
}

// MockEventRepository — мок для EventRepository.
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) ListEvents(ctx context.Context) ([]models.Event, error) {
	args := m.Called(ctx)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.([]models.Event), args.Error(1)
}

func (m *MockEventRepository) GetEventByID(ctx context.Context, id int64) (*models.Event, error) {
	args := m.Called(ctx, id)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.(*models.Event), args.Error(1)
}

func (m *MockEventRepository) CreateEvent(ctx context.Context, e *models.Event) (int64, error) {
	args := m.Called(ctx, e)
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) UpdateEvent(ctx context.Context, e *models.Event) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteEvent(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockStatRepository — мок для StatRepository.
type MockStatRepository struct {
	mock.Mock
}

func (m *MockStatRepository) ListStats(ctx context.Context) ([]models.Stat, error) {
	args := m.Called(ctx)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.([]models.Stat), args.Error(1)
}

func (m *MockStatRepository) GetStatByID(ctx context.Context, id int64) (*models.Stat, error) {
	args := m.Called(ctx, id)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.(*models.Stat), args.Error(1)
}

func (m *MockStatRepository) CreateStat(ctx context.Context, s *models.Stat) (int64, error) {
	args := m.Called(ctx, s)
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStatRepository) UpdateStat(ctx context.Context, s *models.Stat) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStatRepository) DeleteStat(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTestimonialRepository — мок для TestimonialRepository.
type MockTestimonialRepository struct {
	mock.Mock
}

func (m *MockTestimonialRepository) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	args := m.Called(ctx)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.([]models.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) ListActiveTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	args := m.Called(ctx)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.([]models.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) GetTestimonialByID(ctx context.Context, id int64) (*models.Testimonial, error) {
	args := m.Called(ctx, id)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.(*models.Testimonial), args.Error(1)
}

func (m *MockTestimonialRepository) CreateTestimonial(ctx context.Context, t *models.Testimonial) (int64, error) {
	args := m.Called(ctx, t)
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTestimonialRepository) UpdateTestimonial(ctx context.Context, t *models.Testimonial) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *MockTestimonialRepository) DeleteTestimonial(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFAQRepository — мок для FAQRepository.
type MockFAQRepository struct {
	mock.Mock
}

func (m *MockFAQRepository) ListFAQs(ctx context.Context) ([]models.FAQ, error) {
	args := m.Called(ctx)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.([]models.FAQ), args.Error(1)
}

func (m *MockFAQRepository) ListActiveFAQs(ctx context.Context) ([]models.FAQ, error) {
	args := m.Called(ctx)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.([]models.FAQ), args.Error(1)
}

func (m *MockFAQRepository) GetFAQByID(ctx context.Context, id int64) (*models.FAQ, error) {
	args := m.Called(ctx, id)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.(*models.FAQ), args.Error(1)
}

func (m *MockFAQRepository) CreateFAQ(ctx context.Context, f *models.FAQ) (int64, error) {
	args := m.Called(ctx, f)
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockFAQRepository) UpdateFAQ(ctx context.Context, f *models.FAQ) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFAQRepository) DeleteFAQ(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMilestoneRepository — мок для MilestoneRepository.
type MockMilestoneRepository struct {
	mock.Mock
}

func (m *MockMilestoneRepository) ListMilestones(ctx context.Context) ([]models.Milestone, error) {
	args := m.Called(ctx)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.([]models.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) GetMilestoneByID(ctx context.Context, id int64) (*models.Milestone, error) {
	args := m.Called(ctx, id)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.(*models.Milestone), args.Error(1)
}

func (m *MockMilestoneRepository) CreateMilestone(ctx context.Context, ms *models.Milestone) (int64, error) {
	args := m.Called(ctx, ms)
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockMilestoneRepository) UpdateMilestone(ctx context.Context, ms *models.Milestone) error {
	args := m.Called(ctx, ms)
	return args.Error(0)
}

func (m *MockMilestoneRepository) DeleteMilestone(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTeamRepository — мок для TeamRepository.
type MockTeamRepository struct {
	mock.Mock
}

func (m *MockTeamRepository) ListTeamMembers(ctx context.Context) ([]models.TeamMember, error) {
	args := m.Called(ctx)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.([]models.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) GetTeamMemberByID(ctx context.Context, id int64) (*models.TeamMember, error) {
	args := m.Called(ctx, id)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.(*models.TeamMember), args.Error(1)
}

func (m *MockTeamRepository) CreateTeamMember(ctx context.Context, tm *models.TeamMember) (int64, error) {
	args := m.Called(ctx, tm)
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTeamRepository) UpdateTeamMember(ctx context.Context, tm *models.TeamMember) error {
	args := m.Called(ctx, tm)
	return args.Error(0)
}

func (m *MockTeamRepository) DeleteTeamMember(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockSettingsRepository — мок для SettingsRepository.
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetSettings(ctx context.Context) (*models.Settings, error) {
	args := m.Called(ctx)
	ret := args.Get(0)
	if ret == nil {
		return nil, args.Error(1)
	}
	//nolint:errcheck // Ошибки кастования в моках приемлемы
	return ret.(*models.Settings), args.Error(1)
}

func (m *MockSettingsRepository) UpsertSettings(ctx context.Context, s *models.Settings) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSettingsRepository) DeleteSettings(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
