package dto

import "time"

type BookingListDTO struct {
	ID           uint      `json:"id"`
	PublicID     string    `json:"public_id"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	BarberName   string    `json:"barber_name"`
	CustomerName string    `json:"customer_name"`
	ServiceName  string    `json:"service_name"`
	ServicePrice float64   `json:"service_price"`
}
