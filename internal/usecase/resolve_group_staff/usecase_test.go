package resolve_group_staff

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonConsole/internal/domain"
	"github.com/m04kA/SMC-SalonConsole/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SalonConsole/pkg/ptr"
)

const (
	companyID  int64 = 1
	locationID int64 = 5

	svcCut    int64 = 10
	svcColour int64 = 20
	svcNails  int64 = 30
)

type fakeRoster struct {
	roster []*domain.StaffMember
	err    error
}

func (f *fakeRoster) GetRoster(ctx context.Context, companyID int64) ([]*domain.StaffMember, error) {
	return f.roster, f.err
}

type fakeSettings struct {
	settings *domain.ConsoleSettings
}

func (f *fakeSettings) Resolve(ctx context.Context, companyID int64) (*domain.ConsoleSettings, error) {
	return f.settings, nil
}

type fakeCatalog struct {
	serviceCalls map[int64]int
}

func (f *fakeCatalog) GetCompany(ctx context.Context, id int64) (*catalogservice.Company, error) {
	if id != companyID {
		return nil, catalogservice.ErrCompanyNotFound
	}
	return &catalogservice.Company{
		ID:         companyID,
		ManagerIDs: []int64{100},
		Locations:  []catalogservice.Location{{ID: locationID}},
	}, nil
}

func (f *fakeCatalog) GetService(ctx context.Context, cID, serviceID int64) (*domain.Service, error) {
	f.serviceCalls[serviceID]++
	switch serviceID {
	case svcCut:
		return &domain.Service{ID: svcCut, Name: "Cut", Price: 40, DurationMinutes: 45, LocationIDs: []int64{locationID},
			Extras: []domain.Extra{{ID: 1, Name: "Wash", Price: 5}}}, nil
	case svcColour:
		return &domain.Service{ID: svcColour, Name: "Colour", Price: 80, DurationMinutes: 90, LocationIDs: []int64{locationID}}, nil
	case svcNails:
		return &domain.Service{ID: svcNails, Name: "Nails", Price: 30, DurationMinutes: 60, LocationIDs: []int64{locationID}}, nil
	case 40:
		return &domain.Service{ID: 40, Name: "Spa", LocationIDs: []int64{99}}, nil
	}
	return nil, catalogservice.ErrServiceNotFound
}

type fakeMetrics struct {
	modes []string
}

func (f *fakeMetrics) ObserveStaffResolution(mode string) {
	f.modes = append(f.modes, mode)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	uc       *UseCase
	catalog  *fakeCatalog
	settings *fakeSettings
	metrics  *fakeMetrics
}

func newTestEnv() *testEnv {
	roster := &fakeRoster{roster: []*domain.StaffMember{
		{ID: 1, Name: "Anna", ServiceIDs: []int64{svcCut, svcColour}, LocationIDs: []int64{locationID}},
		{ID: 2, Name: "Boris", ServiceIDs: []int64{svcCut}, LocationIDs: []int64{locationID}},
		{ID: 3, Name: "Vera", ServiceIDs: []int64{svcNails}, LocationIDs: []int64{locationID}},
	}}
	env := &testEnv{
		catalog:  &fakeCatalog{serviceCalls: make(map[int64]int)},
		settings: &fakeSettings{settings: domain.DefaultConsoleSettings(companyID)},
		metrics:  &fakeMetrics{},
	}
	env.uc = NewUseCase(roster, env.settings, env.catalog, env.metrics, nopLogger{})
	return env
}

func memberWith(serviceID int64) MemberInput {
	return MemberInput{Name: "guest", ServiceID: ptr.Ptr(serviceID)}
}

func TestExecute_SameStaff(t *testing.T) {
	env := newTestEnv()
	cut := memberWith(svcCut)
	cut.ExtraIDs = []int64{1}

	resp, err := env.uc.Execute(context.Background(), &Request{
		CompanyID:       companyID,
		LocationID:      locationID,
		PreferSameStaff: true,
		Members:         []MemberInput{cut, memberWith(svcColour), memberWith(svcCut), {Name: "undecided"}},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StaffModeSame, resp.Mode)
	assert.True(t, resp.CanUseSameStaff)
	assert.Equal(t, []StaffOption{{ID: 1, Name: "Anna"}}, resp.CommonStaff)
	require.Len(t, resp.Members, 4)
	assert.Equal(t, []StaffOption{{ID: 1, Name: "Anna"}}, resp.Members[0].Options)
	assert.Equal(t, 45.0, resp.Members[0].Price)
	assert.Equal(t, "Cut", *resp.Members[0].ServiceName)
	assert.Empty(t, resp.Members[3].Options)
	assert.Nil(t, resp.Members[3].ServiceName)
	assert.Equal(t, 45.0+80.0+40.0, resp.Total)
	assert.Equal(t, []string{"same"}, env.metrics.modes)

	// Каждая услуга запрашивается один раз
	assert.Equal(t, 1, env.catalog.serviceCalls[svcCut])
}

func TestExecute_FallbackToDifferentStaff(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), &Request{
		CompanyID:       companyID,
		LocationID:      locationID,
		PreferSameStaff: true,
		Members:         []MemberInput{memberWith(svcCut), memberWith(svcNails)},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StaffModeDifferent, resp.Mode)
	assert.False(t, resp.CanUseSameStaff)
	assert.Empty(t, resp.CommonStaff)
	assert.Len(t, resp.Members[0].Options, 2)
	assert.Equal(t, []StaffOption{{ID: 3, Name: "Vera"}}, resp.Members[1].Options)
}

func TestExecute_NoFallbackPolicy(t *testing.T) {
	env := newTestEnv()
	env.settings.settings.SameStaffFallback = domain.FallbackNone

	resp, err := env.uc.Execute(context.Background(), &Request{
		CompanyID:       companyID,
		LocationID:      locationID,
		PreferSameStaff: true,
		Members:         []MemberInput{memberWith(svcCut), memberWith(svcNails)},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StaffModeUnresolved, resp.Mode)
	assert.Equal(t, []string{"unresolved"}, env.metrics.modes)
}

func TestExecute_InvalidAssignmentAndMemberID(t *testing.T) {
	env := newTestEnv()
	id := uuid.New()
	member := memberWith(svcColour)
	member.ID = id
	member.StaffID = ptr.Ptr(int64(2))

	resp, err := env.uc.Execute(context.Background(), &Request{
		CompanyID:  companyID,
		LocationID: locationID,
		Members:    []MemberInput{member},
	})
	require.NoError(t, err)

	assert.Equal(t, id, resp.Members[0].ID)
	assert.False(t, resp.Members[0].StaffValid)
	assert.Equal(t, int64(2), *resp.Members[0].StaffID)
}

func TestExecute_ZeroIDsMeanUnselected(t *testing.T) {
	env := newTestEnv()
	undecided := memberWith(0)
	undecided.StaffID = ptr.Ptr(int64(0))

	resp, err := env.uc.Execute(context.Background(), &Request{
		CompanyID:  companyID,
		LocationID: locationID,
		Members:    []MemberInput{memberWith(svcCut), undecided},
	})
	require.NoError(t, err)

	require.Len(t, resp.Members, 2)
	assert.Nil(t, resp.Members[1].ServiceID)
	assert.Nil(t, resp.Members[1].StaffID)
	assert.Nil(t, resp.Members[1].ServiceName)
	assert.True(t, resp.Members[1].StaffValid)
	assert.Empty(t, resp.Members[1].Options)
	assert.Equal(t, 40.0, resp.Total)
}

func TestExecute_StaffWithoutServiceIsNotInvalid(t *testing.T) {
	env := newTestEnv()
	undecided := MemberInput{Name: "guest", StaffID: ptr.Ptr(int64(3))}

	resp, err := env.uc.Execute(context.Background(), &Request{
		CompanyID:  companyID,
		LocationID: locationID,
		Members:    []MemberInput{memberWith(svcCut), undecided},
	})
	require.NoError(t, err)

	assert.True(t, resp.Members[1].StaffValid)
	assert.Equal(t, int64(3), *resp.Members[1].StaffID)
}

func TestExecute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{
			name:    "no members",
			req:     &Request{CompanyID: companyID, LocationID: locationID},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "extras without service",
			req:     &Request{CompanyID: companyID, LocationID: locationID, Members: []MemberInput{{ExtraIDs: []int64{1}}}},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "unknown company",
			req:     &Request{CompanyID: 2, LocationID: locationID, Members: []MemberInput{memberWith(svcCut)}},
			wantErr: ErrCompanyNotFound,
		},
		{
			name:    "unknown location",
			req:     &Request{CompanyID: companyID, LocationID: 6, Members: []MemberInput{memberWith(svcCut)}},
			wantErr: ErrLocationNotFound,
		},
		{
			name:    "unknown service",
			req:     &Request{CompanyID: companyID, LocationID: locationID, Members: []MemberInput{memberWith(77)}},
			wantErr: ErrServiceNotFound,
		},
		{
			name:    "service elsewhere",
			req:     &Request{CompanyID: companyID, LocationID: locationID, Members: []MemberInput{memberWith(40)}},
			wantErr: ErrServiceNotAvailableAtLocation,
		},
		{
			name: "unknown extra",
			req: &Request{CompanyID: companyID, LocationID: locationID, Members: []MemberInput{
				{ServiceID: ptr.Ptr(svcColour), ExtraIDs: []int64{1}},
			}},
			wantErr: ErrExtraNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newTestEnv().uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestExecute_RosterFailure(t *testing.T) {
	env := newTestEnv()
	env.uc.roster = &fakeRoster{err: errors.New("db down")}

	_, err := env.uc.Execute(context.Background(), &Request{
		CompanyID:  companyID,
		LocationID: locationID,
		Members:    []MemberInput{memberWith(svcCut)},
	})

	assert.ErrorIs(t, err, ErrInternal)
}
