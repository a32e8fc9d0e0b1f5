package booking

import (
	"testing"

	"supermock/models"
)

func TestSlotEligible(t *testing.T) {
	activeBooking := &models.Booking{ID: "b1", Status: models.BookingStatusConfirmed}

	tests := []struct {
		name      string
		slot      models.TimeSlot
		booking   *models.Booking
		interview *models.Interview
		want      bool
	}{
		{
			name: "available slot",
			slot: models.TimeSlot{Status: models.SlotStatusAvailable},
			want: true,
		},
		{
			name: "cancelled slot",
			slot: models.TimeSlot{Status: models.SlotStatusCancelled},
			want: false,
		},
		{
			name:      "booked with scheduled interview",
			slot:      models.TimeSlot{Status: models.SlotStatusBooked},
			booking:   activeBooking,
			interview: &models.Interview{Status: models.InterviewStatusScheduled},
			want:      true,
		},
		{
			name:      "booked with interview in progress",
			slot:      models.TimeSlot{Status: models.SlotStatusBooked},
			booking:   activeBooking,
			interview: &models.Interview{Status: models.InterviewStatusInProgress},
			want:      true,
		},
		{
			name:      "booked with completed interview",
			slot:      models.TimeSlot{Status: models.SlotStatusBooked},
			booking:   activeBooking,
			interview: &models.Interview{Status: models.InterviewStatusCompleted},
			want:      false,
		},
		{
			name:      "booked with cancelled interview",
			slot:      models.TimeSlot{Status: models.SlotStatusBooked},
			booking:   activeBooking,
			interview: &models.Interview{Status: models.InterviewStatusCancelled},
			want:      false,
		},
		{
			name: "booked without a booking record",
			slot: models.TimeSlot{Status: models.SlotStatusBooked},
			want: false,
		},
		{
			name:    "booked without an interview yet",
			slot:    models.TimeSlot{Status: models.SlotStatusBooked},
			booking: activeBooking,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SlotEligible(tt.slot, tt.booking, tt.interview); got != tt.want {
				t.Errorf("SlotEligible() = %v, want %v", got, tt.want)
			}
		})
	}
}
