package handlers

import (
	userRepoPkg "supermock/database/repository/user"
)

// HandlerBundle groups all endpoint handlers plus the repo the auth
// middleware needs.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	Users         *UserHandler
	TimeSlots     *TimeSlotHandler
	Bookings      *BookingHandler
	Points        *PointsHandler
	Interviews    *InterviewHandler
	Notifications *NotificationHandler
	Admin         *AdminHandler
	Interests     *InterestHandler
}
