package model

// Card is the single stored payment instrument a returning guest may have on
// file with the card vault. The vault masks the number at rest; the unmasked
// form is only fetched on the checkout prefill path.
//
// Fields:
//  ID          – vault identifier.
//  CardNumber  – card number, masked unless explicitly requested otherwise.
//  CardHolder  – name on the card.
//  ExpiryMonth – two-digit expiry month.
//  ExpiryYear  – four-digit expiry year.
//  CVV         – vault echo used to prefill the checkout form.
//  CardType    – visa, mastercard or amex.
type Card struct {
	ID          int    `json:"id"`
	CardNumber  string `json:"cardNumber"`
	CardHolder  string `json:"cardHolder"`
	ExpiryMonth string `json:"expiryMonth"`
	ExpiryYear  string `json:"expiryYear"`
	CVV         string `json:"cvv"`
	CardType    string `json:"cardType,omitempty"`
}
