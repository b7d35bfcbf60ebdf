package domain

import "time"

// ProductBundle комбо-набор из статического каталога
type ProductBundle struct {
	ID              int64    `json:"id" yaml:"id"`
	Name            string   `json:"name" yaml:"name"`
	Price           int64    `json:"price" yaml:"price"`
	Tag             string   `json:"tag" yaml:"tag"`
	Description     string   `json:"description" yaml:"description"`
	Items           []string `json:"items" yaml:"items"`
	DressImages     []string `json:"dress_images,omitempty" yaml:"dress_images"`
	ShoesImage      string   `json:"shoes_image,omitempty" yaml:"shoes_image"`
	SunglassesImage string   `json:"sunglasses_image,omitempty" yaml:"sunglasses_image"`
	WatchImage      string   `json:"watch_image,omitempty" yaml:"watch_image"`
}

// SizeSelection выбранные размеры платья и обуви
type SizeSelection struct {
	Dress string `json:"dress,omitempty"`
	Shoes string `json:"shoes,omitempty"`
}

var (
	DressSizes = []string{"S", "M", "L", "XL"}
	ShoeSizes  = []string{"4", "5", "6", "7", "8", "9"}
)

const (
	DefaultDressSize = "M"
	DefaultShoeSize  = "7"
)

// CartItem содержимое корзины: один набор и размеры
type CartItem struct {
	Bundle ProductBundle `json:"bundle"`
	Size   SizeSelection `json:"selected_size"`
}

// CheckoutForm данные доставки, все поля обязательны
type CheckoutForm struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}

// OrderRecord оформленный заказ
type OrderRecord struct {
	OrderID string `json:"order_id"`
	CheckoutForm
	Combo     CartItem  `json:"combo"`
	CreatedAt time.Time `json:"created_at"`
}

// PaymentConfirmation квитанция имитации оплаты
type PaymentConfirmation struct {
	OrderID    string    `json:"order_id"`
	Screenshot string    `json:"screenshot,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Identity профиль текущего пользователя
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}

// Stage стадия доставки
type Stage string

const (
	StageConfirmed      Stage = "Confirmed"
	StageProcessing     Stage = "Processing"
	StageShipped        Stage = "Shipped"
	StageOutForDelivery Stage = "OutForDelivery"
)

// TrackingStatus вычисляется при каждом чтении, не хранится
type TrackingStatus struct {
	Stage             Stage  `json:"stage"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Progress          int    `json:"progress"`
	EstimatedDelivery string `json:"estimated_delivery"`
}

// Step шаг пути заказа
type Step string

const (
	StepPlaced     Step = "Placed"
	StepConfirmed  Step = "Confirmed"
	StepProcessing Step = "Processing"
	StepShipped    Step = "Shipped"
	StepDelivered  Step = "Delivered"
)

type OrderStep struct {
	Number    int    `json:"step"`
	Step      Step   `json:"key"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
}

// OrderStatusView всё, что нужно странице статуса заказа
type OrderStatusView struct {
	Order        OrderRecord          `json:"order"`
	Payment      *PaymentConfirmation `json:"payment,omitempty"`
	Tracking     TrackingStatus       `json:"tracking"`
	Steps        []OrderStep          `json:"steps"`
	ShowTracking bool                 `json:"show_tracking"`
}
