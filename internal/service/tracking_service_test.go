package service

import (
	"context"
	"testing"

	"parcel-delivery-service/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackingService_AppendAndHistory(t *testing.T) {
	repo := &fakeTrackingRepo{}
	svc := NewTrackingService(repo)

	e, err := svc.Append(context.Background(), dto.AppendTrackingRequest{
		TrackingID: "PCL-20260830-ABCDEF12",
		ParcelID:   "64f000000000000000000001",
		Status:     "in_transit",
		Location:   "Dhaka hub",
		UpdatedBy:  "rita@x.com",
	})
	require.NoError(t, err)
	assert.False(t, e.Timestamp.IsZero())

	_, err = svc.Append(context.Background(), dto.AppendTrackingRequest{
		TrackingID: "PCL-20260830-ABCDEF12",
		ParcelID:   "64f000000000000000000001",
		Status:     "delivered",
		UpdatedBy:  "rita@x.com",
	})
	require.NoError(t, err)

	history, err := svc.History(context.Background(), "PCL-20260830-ABCDEF12")
	require.NoError(t, err)
	require.Len(t, history, 2)
	// orden cronológico ascendente
	assert.Equal(t, "in_transit", history[0].Status)
	assert.Equal(t, "delivered", history[1].Status)

	empty, err := svc.History(context.Background(), "PCL-00000000-00000000")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
