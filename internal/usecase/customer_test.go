package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"osg-reconciler/internal/domain"
	"osg-reconciler/internal/usecase"
	mock_usecase "osg-reconciler/internal/usecase/mocks"
)

const customerPath = "/data/osid.xlsx"

func customerRows() []domain.CustomerSheetRow {
	return []domain.CustomerSheetRow{
		{Phone: "9847012345.0", Name: "Asha", Invoice: "INV1", Model: "OLED55", Serial: "SN1", OSID: "OS1"},
		{Phone: "9847012345", Name: "Asha", Invoice: "INV2", Model: "GL-T292", Serial: "SN2", OSID: "OS2"},
		{Phone: "9847099999", Name: "Ravi", Invoice: "INV3", Model: "AC15", Serial: "SN3", OSID: "OS3"},
	}
}

func TestCustomerDirectory_FindCustomerByPhone(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	loadedAt := time.Date(2025, 12, 3, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		phone   string
		want    domain.Customer
		wantErr error
	}{
		{
			name:  "exact match returns every product",
			phone: "9847012345",
			want: domain.Customer{
				Name:  "Asha",
				Phone: "9847012345",
				Products: []domain.CustomerProduct{
					{Invoice: "INV1", Model: "OLED55", Serial: "SN1", ExternalID: "OS1"},
					{Invoice: "INV2", Model: "GL-T292", Serial: "SN2", ExternalID: "OS2"},
				},
			},
		},
		{
			name:  "partial match fallback",
			phone: "99999",
			want: domain.Customer{
				Name:     "Ravi",
				Phone:    "9847099999",
				Products: []domain.CustomerProduct{{Invoice: "INV3", Model: "AC15", Serial: "SN3", ExternalID: "OS3"}},
			},
		},
		{
			name:    "unknown phone",
			phone:   "9000000000",
			wantErr: domain.ErrCustomerNotFound,
		},
		{
			name:    "blank phone",
			phone:   "  ",
			wantErr: domain.ErrCustomerNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mRepo := mock_usecase.NewMockCustomerRepository(ctrl)
			mRepo.EXPECT().ModTime(customerPath).Return(loadedAt, nil).MaxTimes(1)
			mRepo.EXPECT().GetCustomerRows(gomock.Any(), customerPath).Return(customerRows(), nil).MaxTimes(1)

			dir := usecase.NewCustomerDirectory(mRepo, customerPath, quietLogger())
			got, err := dir.FindCustomerByPhone(context.Background(), tt.phone)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCustomerDirectory_CachesUntilFileChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	first := time.Date(2025, 12, 3, 10, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	mRepo := mock_usecase.NewMockCustomerRepository(ctrl)
	gomock.InOrder(
		mRepo.EXPECT().ModTime(customerPath).Return(first, nil),
		mRepo.EXPECT().GetCustomerRows(gomock.Any(), customerPath).Return(customerRows(), nil),
		mRepo.EXPECT().ModTime(customerPath).Return(first, nil),
		mRepo.EXPECT().ModTime(customerPath).Return(second, nil),
		mRepo.EXPECT().GetCustomerRows(gomock.Any(), customerPath).Return([]domain.CustomerSheetRow{
			{Phone: "9847012345", Name: "Asha K", Invoice: "INV9", Model: "QLED", Serial: "SN9", OSID: "OS9"},
		}, nil),
	)

	dir := usecase.NewCustomerDirectory(mRepo, customerPath, quietLogger())
	ctx := context.Background()

	got, err := dir.FindCustomerByPhone(ctx, "9847012345")
	require.NoError(t, err)
	assert.Len(t, got.Products, 2)

	got, err = dir.FindCustomerByPhone(ctx, "9847012345")
	require.NoError(t, err)
	assert.Len(t, got.Products, 2)

	got, err = dir.FindCustomerByPhone(ctx, "9847012345")
	require.NoError(t, err)
	assert.Equal(t, "Asha K", got.Name)
	assert.Len(t, got.Products, 1)
}

func TestCustomerDirectory_LoadErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("stat failure before first load", func(t *testing.T) {
		mRepo := mock_usecase.NewMockCustomerRepository(ctrl)
		mRepo.EXPECT().ModTime(customerPath).Return(time.Time{}, errors.New("no such file"))

		dir := usecase.NewCustomerDirectory(mRepo, customerPath, quietLogger())
		_, err := dir.FindCustomerByPhone(context.Background(), "9847012345")

		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrCustomerNotFound)
	})

	t.Run("stat failure after load serves cache", func(t *testing.T) {
		mRepo := mock_usecase.NewMockCustomerRepository(ctrl)
		gomock.InOrder(
			mRepo.EXPECT().ModTime(customerPath).Return(time.Unix(100, 0), nil),
			mRepo.EXPECT().GetCustomerRows(gomock.Any(), customerPath).Return(customerRows(), nil),
			mRepo.EXPECT().ModTime(customerPath).Return(time.Time{}, errors.New("file moved")),
		)

		dir := usecase.NewCustomerDirectory(mRepo, customerPath, quietLogger())
		_, err := dir.FindCustomerByPhone(context.Background(), "9847012345")
		require.NoError(t, err)

		got, err := dir.FindCustomerByPhone(context.Background(), "9847099999")
		require.NoError(t, err)
		assert.Equal(t, "Ravi", got.Name)
	})

	t.Run("unreadable workbook", func(t *testing.T) {
		mRepo := mock_usecase.NewMockCustomerRepository(ctrl)
		mRepo.EXPECT().ModTime(customerPath).Return(time.Unix(100, 0), nil)
		mRepo.EXPECT().GetCustomerRows(gomock.Any(), customerPath).Return(nil, domain.ErrMalformedSource)

		dir := usecase.NewCustomerDirectory(mRepo, customerPath, quietLogger())
		_, err := dir.FindCustomerByPhone(context.Background(), "9847012345")

		assert.ErrorIs(t, err, domain.ErrMalformedSource)
	})
}
