// Package model содержит доменные сущности сервиса бронирования уборки.
package model

// BookingStatus описывает статус обработки заявки на уборку.
type BookingStatus string

const (
	BookingStatusPending  BookingStatus = "Pending"
	BookingStatusApproved BookingStatus = "Approved"
	BookingStatusRejected BookingStatus = "Rejected"
)

// IsValidStatus сообщает, является ли строка одним из трёх допустимых статусов.
func IsValidStatus(s string) bool {
	switch BookingStatus(s) {
	case BookingStatusPending, BookingStatusApproved, BookingStatusRejected:
		return true
	}
	return false
}

// Booking описывает заявку клиента на уборку.
// Идентификаторы id и bookingNumber назначаются хранилищем при создании.
type Booking struct {
	ID            int64         `json:"id"`
	BookingNumber string        `json:"bookingNumber"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	Address       string        `json:"address"`
	Service       string        `json:"service"`
	Date          string        `json:"date"`
	Time          string        `json:"time"`
	Status        BookingStatus `json:"status"`
}

// BookingRequest содержит поля формы бронирования без назначаемых хранилищем значений.
type BookingRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	Service string `json:"service"`
	Date    string `json:"date"`
	Time    string `json:"time"`
}

// Password описывает один общий секрет администратора.
type Password struct {
	ID       int64  `json:"id"`
	Password string `json:"password"`
}

// Service описывает позицию каталога услуг.
type Service struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
}

// ServiceCatalog — фиксированный каталог услуг, который использует форма бронирования.
// Цены заполнены неравномерно и не являются авторитетными.
var ServiceCatalog = []Service{
	{ID: "deep-cleaning", Title: "Deep Cleaning", Description: "A thorough cleaning of your entire home, top to bottom.", Price: ""},
	{ID: "carpet-cleaning", Title: "Carpet Cleaning", Description: "Professional steam cleaning for your carpets.", Price: "90"},
	{ID: "kitchen-cleaning", Title: "Kitchen Cleaning", Description: "We sanitize all surfaces and clean appliances.", Price: ""},
	{ID: "bathroom-cleaning", Title: "Bathroom Cleaning", Description: "A complete disinfection and cleaning of bathrooms.", Price: "$100"},
	{ID: "window-cleaning", Title: "Window Cleaning", Description: "Streak-free cleaning for all interior and exterior windows.", Price: "$150"},
	{ID: "office-cleaning", Title: "Office Cleaning", Description: "Customized cleaning plans for commercial spaces.", Price: "Contact for Quote"},
}

// IsValidService сообщает, входит ли идентификатор услуги в каталог.
func IsValidService(id string) bool {
	for _, s := range ServiceCatalog {
		if s.ID == id {
			return true
		}
	}
	return false
}
