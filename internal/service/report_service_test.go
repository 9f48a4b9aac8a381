package service

import (
	"context"
	"testing"
	"time"

	"LostFoundAPI/internal/config"
	"LostFoundAPI/internal/constant"
	"LostFoundAPI/internal/entity"
	"LostFoundAPI/internal/helper"
	"LostFoundAPI/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestReportService(t *testing.T) (*ReportService, *fakeReportStore, *fakeUserStore) {
	t.Helper()
	reports := newFakeReportStore()
	users := newFakeUserStore()
	cfg := &config.AppConfig{
		NearbyRadiusMeters: 10000,
		MaxPageSize:        100,
	}
	return NewReportService(reports, users, cfg, config.NewValidator()), reports, users
}

func seedUser(t *testing.T, users *fakeUserStore, username string, roles ...string) *model.UserDTO {
	t.Helper()
	if len(roles) == 0 {
		roles = []string{constant.RoleUser}
	}
	u, err := users.Create(context.Background(), &entity.User{
		Username:  username,
		Email:     username + "@example.com",
		FirstName: "Test",
		LastName:  "User",
		Roles:     roles,
		Active:    true,
	})
	require.NoError(t, err)
	return &model.UserDTO{ID: u.ID, Username: u.Username, Roles: u.Roles}
}

func floatPtr(v float64) *float64 { return &v }

func validPersonReportRequest() model.CreateReportRequest {
	return model.CreateReportRequest{
		Type:        constant.ReportTypeMissingPerson,
		Title:       "Missing: Jane Doe",
		Description: "Last seen near the central station wearing a red jacket.",
		PersonDetails: &model.PersonDetailsDTO{
			FullName:  "Jane Doe",
			HairColor: "brown",
		},
		LastSeenLocation: &model.LocationDTO{
			Latitude:  floatPtr(6.5244),
			Longitude: floatPtr(3.3792),
			City:      "Lagos",
		},
	}
}

func appErrorCode(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*helper.AppError)
	require.True(t, ok, "expected *helper.AppError, got %T", err)
	return appErr.Code
}

func TestCreateReportMissingPerson(t *testing.T) {
	svc, reports, users := newTestReportService(t)
	principal := seedUser(t, users, "reporter1")

	resp, err := svc.Create(context.Background(), principal, validPersonReportRequest())
	require.NoError(t, err)

	assert.Equal(t, constant.ReportStatusActive, resp.Status)
	assert.True(t, resp.IsPublic)
	require.NotNil(t, resp.Reporter)
	assert.Equal(t, "reporter1", resp.Reporter.Username)
	assert.Equal(t, "Test User", resp.Reporter.FullName)
	require.NotNil(t, resp.PersonDetails)
	assert.Equal(t, "Jane Doe", resp.PersonDetails.FullName)
	assert.Equal(t, 6.5244, resp.LastSeenLocation.Latitude)
	assert.Equal(t, 3.3792, resp.LastSeenLocation.Longitude)
	assert.NotNil(t, resp.ImageURLs)

	assert.False(t, resp.CreatedAt.IsZero())
	assert.Equal(t, resp.CreatedAt, resp.UpdatedAt)

	id, err := primitive.ObjectIDFromHex(resp.ID)
	require.NoError(t, err)
	stored, err := reports.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, []float64{3.3792, 6.5244}, stored.LastSeenLocation.Coordinates)
	assert.Equal(t, "Point", stored.LastSeenLocation.Type)
	assert.Equal(t, principal.ID, stored.ReporterID)
}

func TestCreateReportPrivate(t *testing.T) {
	svc, _, users := newTestReportService(t)
	principal := seedUser(t, users, "reporter2")

	req := validPersonReportRequest()
	isPublic := false
	req.IsPublic = &isPublic

	resp, err := svc.Create(context.Background(), principal, req)
	require.NoError(t, err)
	assert.False(t, resp.IsPublic)
}

func TestCreateReportAnonymousRejected(t *testing.T) {
	svc, _, _ := newTestReportService(t)

	_, err := svc.Create(context.Background(), nil, validPersonReportRequest())
	assert.Equal(t, 401, appErrorCode(t, err))
}

func TestCreateReportVariantMismatch(t *testing.T) {
	svc, _, users := newTestReportService(t)
	principal := seedUser(t, users, "reporter3")

	t.Run("person report with item details", func(t *testing.T) {
		req := validPersonReportRequest()
		req.ItemDetails = &model.ItemDetailsDTO{ItemName: "Backpack"}
		_, err := svc.Create(context.Background(), principal, req)
		assert.Equal(t, 400, appErrorCode(t, err))
	})

	t.Run("person report without person details", func(t *testing.T) {
		req := validPersonReportRequest()
		req.PersonDetails = nil
		_, err := svc.Create(context.Background(), principal, req)
		assert.Equal(t, 400, appErrorCode(t, err))
	})

	t.Run("person report with blank full name", func(t *testing.T) {
		req := validPersonReportRequest()
		req.PersonDetails = &model.PersonDetailsDTO{FullName: "   "}
		_, err := svc.Create(context.Background(), principal, req)
		assert.Equal(t, 400, appErrorCode(t, err))
	})

	t.Run("item report without item details", func(t *testing.T) {
		req := validPersonReportRequest()
		req.Type = constant.ReportTypeLostItem
		req.PersonDetails = nil
		_, err := svc.Create(context.Background(), principal, req)
		assert.Equal(t, 400, appErrorCode(t, err))
	})

	t.Run("item report with person details", func(t *testing.T) {
		req := validPersonReportRequest()
		req.Type = constant.ReportTypeFoundItem
		req.ItemDetails = &model.ItemDetailsDTO{ItemName: "Wallet"}
		_, err := svc.Create(context.Background(), principal, req)
		assert.Equal(t, 400, appErrorCode(t, err))
	})
}

func TestCreateReportValidation(t *testing.T) {
	svc, _, users := newTestReportService(t)
	principal := seedUser(t, users, "reporter4")

	t.Run("unknown type", func(t *testing.T) {
		req := validPersonReportRequest()
		req.Type = "STOLEN_PET"
		_, err := svc.Create(context.Background(), principal, req)
		assert.Equal(t, 400, appErrorCode(t, err))
	})

	t.Run("latitude out of range", func(t *testing.T) {
		req := validPersonReportRequest()
		req.LastSeenLocation.Latitude = floatPtr(95)
		_, err := svc.Create(context.Background(), principal, req)
		assert.Equal(t, 400, appErrorCode(t, err))
	})

	t.Run("missing location", func(t *testing.T) {
		req := validPersonReportRequest()
		req.LastSeenLocation = nil
		_, err := svc.Create(context.Background(), principal, req)
		assert.Equal(t, 400, appErrorCode(t, err))
	})

	t.Run("negative reward", func(t *testing.T) {
		req := validPersonReportRequest()
		req.RewardAmount = floatPtr(-10)
		_, err := svc.Create(context.Background(), principal, req)
		assert.Equal(t, 400, appErrorCode(t, err))
	})
}

func TestGetByID(t *testing.T) {
	svc, _, users := newTestReportService(t)
	principal := seedUser(t, users, "reporter5")

	created, err := svc.Create(context.Background(), principal, validPersonReportRequest())
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		resp, err := svc.GetByID(context.Background(), created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, resp.ID)
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), "not-an-object-id")
		assert.Equal(t, 400, appErrorCode(t, err))
	})

	t.Run("not found", func(t *testing.T) {
		_, err := svc.GetByID(context.Background(), primitive.NewObjectID().Hex())
		assert.Equal(t, 404, appErrorCode(t, err))
	})
}

func TestListPublicDefaultsStatus(t *testing.T) {
	svc, reports, users := newTestReportService(t)
	principal := seedUser(t, users, "reporter6")
	_, err := svc.Create(context.Background(), principal, validPersonReportRequest())
	require.NoError(t, err)

	p := model.Pageable{Page: 0, Size: 10, SortBy: "createdAt", SortDir: "desc"}
	page, err := svc.ListPublic(context.Background(), "", "", p)
	require.NoError(t, err)

	assert.Equal(t, constant.ReportStatusActive, reports.lastPage.status)
	assert.Len(t, page.Content, 1)
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, 1, page.TotalPages)
}

func TestListPublicRejectsUnknownFilters(t *testing.T) {
	svc, _, _ := newTestReportService(t)
	p := model.Pageable{Page: 0, Size: 10, SortBy: "createdAt", SortDir: "desc"}

	_, err := svc.ListPublic(context.Background(), "UNKNOWN", "", p)
	assert.Equal(t, 400, appErrorCode(t, err))

	_, err = svc.ListPublic(context.Background(), "", "BOGUS", p)
	assert.Equal(t, 400, appErrorCode(t, err))
}

func TestListPublicPageMath(t *testing.T) {
	svc, reports, _ := newTestReportService(t)
	reports.pageTotal = 25

	p := model.Pageable{Page: 1, Size: 10, SortBy: "createdAt", SortDir: "desc"}
	page, err := svc.ListPublic(context.Background(), "", constant.ReportStatusResolved, p)
	require.NoError(t, err)

	assert.Equal(t, 1, page.PageNumber)
	assert.Equal(t, 10, page.PageSize)
	assert.Equal(t, int64(25), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
}

func TestMyReportsIncludesPrivate(t *testing.T) {
	svc, _, users := newTestReportService(t)
	principal := seedUser(t, users, "reporter7")
	other := seedUser(t, users, "reporter8")

	req := validPersonReportRequest()
	isPublic := false
	req.IsPublic = &isPublic
	_, err := svc.Create(context.Background(), principal, req)
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), other, validPersonReportRequest())
	require.NoError(t, err)

	mine, err := svc.MyReports(context.Background(), principal)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.False(t, mine[0].IsPublic)

	_, err = svc.MyReports(context.Background(), nil)
	assert.Equal(t, 401, appErrorCode(t, err))
}

func TestNearbyDefaultsRadius(t *testing.T) {
	svc, reports, _ := newTestReportService(t)

	_, err := svc.Nearby(context.Background(), 6.5244, 3.3792, 0, "")
	require.NoError(t, err)

	assert.Equal(t, 10000.0, reports.lastNear.radiusMeters)
	assert.Equal(t, 6.5244, reports.lastNear.latitude)
	assert.Equal(t, 3.3792, reports.lastNear.longitude)
	assert.Equal(t, constant.ReportStatusActive, reports.lastNear.status)
}

func TestNearbyExplicitRadiusAndType(t *testing.T) {
	svc, reports, _ := newTestReportService(t)

	_, err := svc.Nearby(context.Background(), 1, 2, 500, constant.ReportTypeLostItem)
	require.NoError(t, err)

	assert.Equal(t, 500.0, reports.lastNear.radiusMeters)
	assert.Equal(t, constant.ReportTypeLostItem, reports.lastNear.reportType)
}

func TestNearbyRejectsBadCoordinates(t *testing.T) {
	svc, _, _ := newTestReportService(t)

	_, err := svc.Nearby(context.Background(), 91, 0, 0, "")
	assert.Equal(t, 400, appErrorCode(t, err))

	_, err = svc.Nearby(context.Background(), 0, -181, 0, "")
	assert.Equal(t, 400, appErrorCode(t, err))

	_, err = svc.Nearby(context.Background(), 0, 0, 0, "UNKNOWN")
	assert.Equal(t, 400, appErrorCode(t, err))
}

func TestUpdateStatus(t *testing.T) {
	svc, reports, users := newTestReportService(t)
	owner := seedUser(t, users, "owner")
	admin := seedUser(t, users, "admin", constant.RoleUser, constant.RoleAdmin)
	stranger := seedUser(t, users, "stranger")

	created, err := svc.Create(context.Background(), owner, validPersonReportRequest())
	require.NoError(t, err)
	reportID, err := primitive.ObjectIDFromHex(created.ID)
	require.NoError(t, err)

	t.Run("stranger forbidden", func(t *testing.T) {
		err := svc.UpdateStatus(context.Background(), stranger, created.ID, constant.ReportStatusResolved)
		assert.Equal(t, 403, appErrorCode(t, err))
	})

	t.Run("anonymous rejected", func(t *testing.T) {
		err := svc.UpdateStatus(context.Background(), nil, created.ID, constant.ReportStatusResolved)
		assert.Equal(t, 401, appErrorCode(t, err))
	})

	t.Run("invalid status", func(t *testing.T) {
		err := svc.UpdateStatus(context.Background(), owner, created.ID, "DONE")
		assert.Equal(t, 400, appErrorCode(t, err))
	})

	t.Run("invalid id", func(t *testing.T) {
		err := svc.UpdateStatus(context.Background(), owner, "nope", constant.ReportStatusResolved)
		assert.Equal(t, 400, appErrorCode(t, err))
	})

	t.Run("unknown id", func(t *testing.T) {
		err := svc.UpdateStatus(context.Background(), owner, primitive.NewObjectID().Hex(), constant.ReportStatusResolved)
		assert.Equal(t, 404, appErrorCode(t, err))
	})

	t.Run("owner allowed", func(t *testing.T) {
		before, err := reports.FindByID(context.Background(), reportID)
		require.NoError(t, err)

		time.Sleep(time.Millisecond)
		err = svc.UpdateStatus(context.Background(), owner, created.ID, constant.ReportStatusResolved)
		require.NoError(t, err)

		stored, err := reports.FindByID(context.Background(), reportID)
		require.NoError(t, err)
		assert.Equal(t, constant.ReportStatusResolved, stored.Status)
		assert.Equal(t, before.CreatedAt, stored.CreatedAt)
		assert.True(t, stored.UpdatedAt.After(before.UpdatedAt))
	})

	t.Run("admin allowed", func(t *testing.T) {
		err := svc.UpdateStatus(context.Background(), admin, created.ID, constant.ReportStatusCancelled)
		require.NoError(t, err)
		stored, err := reports.FindByID(context.Background(), reportID)
		require.NoError(t, err)
		assert.Equal(t, constant.ReportStatusCancelled, stored.Status)
	})
}

func TestStatsAdminOnly(t *testing.T) {
	svc, _, users := newTestReportService(t)
	user := seedUser(t, users, "plainuser")
	admin := seedUser(t, users, "statadmin", constant.RoleAdmin)

	_, err := svc.Create(context.Background(), user, validPersonReportRequest())
	require.NoError(t, err)

	_, err = svc.Stats(context.Background(), nil)
	assert.Equal(t, 401, appErrorCode(t, err))

	_, err = svc.Stats(context.Background(), user)
	assert.Equal(t, 403, appErrorCode(t, err))

	stats, err := svc.Stats(context.Background(), admin)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(1), stats.ByStatus[constant.ReportStatusActive])
	assert.Equal(t, int64(1), stats.ByType[constant.ReportTypeMissingPerson])
	assert.Equal(t, int64(0), stats.ByType[constant.ReportTypeLostItem])
}

func TestSearchByName(t *testing.T) {
	svc, _, users := newTestReportService(t)
	user := seedUser(t, users, "searcher")
	admin := seedUser(t, users, "searchadmin", constant.RoleAdmin)

	_, err := svc.Create(context.Background(), user, validPersonReportRequest())
	require.NoError(t, err)

	itemReq := validPersonReportRequest()
	itemReq.Type = constant.ReportTypeLostItem
	itemReq.PersonDetails = nil
	itemReq.ItemDetails = &model.ItemDetailsDTO{ItemName: "Blue Backpack"}
	_, err = svc.Create(context.Background(), user, itemReq)
	require.NoError(t, err)

	t.Run("non-admin forbidden", func(t *testing.T) {
		_, err := svc.SearchByName(context.Background(), user, "jane", "person")
		assert.Equal(t, 403, appErrorCode(t, err))
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.SearchByName(context.Background(), admin, "  ", "person")
		assert.Equal(t, 400, appErrorCode(t, err))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := svc.SearchByName(context.Background(), admin, "jane", "pet")
		assert.Equal(t, 400, appErrorCode(t, err))
	})

	t.Run("person match", func(t *testing.T) {
		found, err := svc.SearchByName(context.Background(), admin, "jane", "person")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Jane Doe", found[0].PersonDetails.FullName)
	})

	t.Run("item match", func(t *testing.T) {
		found, err := svc.SearchByName(context.Background(), admin, "backpack", "item")
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Blue Backpack", found[0].ItemDetails.ItemName)
	})
}

func TestReportsBetween(t *testing.T) {
	svc, _, users := newTestReportService(t)
	user := seedUser(t, users, "ranger")
	admin := seedUser(t, users, "rangeadmin", constant.RoleAdmin)

	_, err := svc.Create(context.Background(), user, validPersonReportRequest())
	require.NoError(t, err)

	now := time.Now().UTC()

	t.Run("inverted range", func(t *testing.T) {
		_, err := svc.ReportsBetween(context.Background(), admin, now, now.Add(-time.Hour))
		assert.Equal(t, 400, appErrorCode(t, err))
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		_, err := svc.ReportsBetween(context.Background(), user, now.Add(-time.Hour), now.Add(time.Hour))
		assert.Equal(t, 403, appErrorCode(t, err))
	})

	t.Run("in range", func(t *testing.T) {
		found, err := svc.ReportsBetween(context.Background(), admin, now.Add(-time.Hour), now.Add(time.Hour))
		require.NoError(t, err)
		assert.Len(t, found, 1)
	})
}
