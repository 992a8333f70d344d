package common

// BillStatus tracks whether a bill is still open for changes
type BillStatus string

const (
	BillStatusActive   BillStatus = "active"
	BillStatusArchived BillStatus = "archived"
)

func (s BillStatus) String() string {
	return string(s)
}

func (s BillStatus) IsValid() bool {
	return s == BillStatusActive || s == BillStatusArchived
}

type PaymentStatus string

const (
	PaymentStatusPaid    PaymentStatus = "paid"
	PaymentStatusNotPaid PaymentStatus = "not_paid"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusPaid || s == PaymentStatusNotPaid
}

// BillType is where a bill originated from
type BillType string

const (
	BillTypeContent     BillType = "content"
	BillTypeIntegration BillType = "integration"
	BillTypeOther       BillType = "other"
)

func (t BillType) String() string {
	return string(t)
}

func (t BillType) IsValid() bool {
	switch t {
	case BillTypeContent, BillTypeIntegration, BillTypeOther:
		return true
	}
	return false
}

type PaymentType string

const (
	PaymentTypeCash         PaymentType = "cash"
	PaymentTypeCard         PaymentType = "card"
	PaymentTypeBankTransfer PaymentType = "bank_transfer"
	PaymentTypeCrypto       PaymentType = "crypto"
)

func (t PaymentType) String() string {
	return string(t)
}

func (t PaymentType) IsValid() bool {
	switch t {
	case PaymentTypeCash, PaymentTypeCard, PaymentTypeBankTransfer, PaymentTypeCrypto:
		return true
	}
	return false
}

// ContactType is the channel the bill contact is reachable on
type ContactType string

const (
	ContactTypeTelegram  ContactType = "telegram"
	ContactTypeInstagram ContactType = "instagram"
	ContactTypeVK        ContactType = "vk"
	ContactTypeEmail     ContactType = "email"
	ContactTypePhone     ContactType = "phone"
	ContactTypeOther     ContactType = "other"
)

func (t ContactType) String() string {
	return string(t)
}

func (t ContactType) IsValid() bool {
	switch t {
	case ContactTypeTelegram, ContactTypeInstagram, ContactTypeVK, ContactTypeEmail, ContactTypePhone, ContactTypeOther:
		return true
	}
	return false
}
