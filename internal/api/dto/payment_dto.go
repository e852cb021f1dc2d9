package dto

// PaymentIntentRequest payload for POST /create-payment-intent. Price is in
// major currency units.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// PaymentIntentResponse carries the processor's client secret.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// SubscriptionResponse is the subscribed flag for GET /payments/:email.
type SubscriptionResponse struct {
	Subscribed bool `json:"subscribed"`
}
