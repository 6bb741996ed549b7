package models

// Payment represents a recorded payment. The matricule and fee code are not
// enforced as foreign keys: a payment may reference a removed student or fee.
// Partial payments are supported, the amount may be less than the fee amount.
type Payment struct {
	ID        string      `json:"id"`
	Date      string      `json:"date_paiement" validate:"required"`
	Matricule string      `json:"matricule" validate:"required"`
	FeeCode   string      `json:"code_frais" validate:"required"`
	Amount    int64       `json:"montant_paye" validate:"required,gt=0"`
	Mode      PaymentMode `json:"mode" validate:"required,oneof=especes cheque virement mobile"`
	Reference string      `json:"num_piece,omitempty"`
	Cashier   string      `json:"caissier" validate:"required"`
	Comment   string      `json:"commentaires,omitempty"`
}
