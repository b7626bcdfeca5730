package schemas

import (
	"time"

	"github.com/google/uuid"

	"github.com/evercart/eventschema/event"
	"github.com/evercart/eventschema/registry"
	"github.com/evercart/eventschema/taxonomy"
)

// CustomerRegistered is the payload of the "customer.registered" event.
type CustomerRegistered struct {
	CustomerID         uuid.UUID `json:"customer_id"`
	Email              string    `json:"email"`
	CustomerType       string    `json:"customer_type"`
	RegistrationSource string    `json:"registration_source"`
	IPAddress          string    `json:"ip_address,omitempty"`
	ReferralCode       string    `json:"referral_code,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

// EventType implements the event.Payload interface.
func (*CustomerRegistered) EventType() string { return taxonomy.CustomerRegistered }

// Validate implements the event.Payload interface.
func (p *CustomerRegistered) Validate() error {
	if err := requireUUID("customer_id", p.CustomerID); err != nil {
		return err
	}

	if err := requireEmail("email", p.Email); err != nil {
		return err
	}

	if err := requireOneOf("customer_type", p.CustomerType, "individual", "business"); err != nil {
		return err
	}

	if err := requireString("registration_source", p.RegistrationSource); err != nil {
		return err
	}

	return requireTime("created_at", p.CreatedAt)
}

// CustomerUpdated is the payload of the "customer.updated" event.
type CustomerUpdated struct {
	CustomerID    uuid.UUID      `json:"customer_id"`
	FieldsUpdated []string       `json:"fields_updated"`
	OldValues     map[string]any `json:"old_values"`
	NewValues     map[string]any `json:"new_values"`
	UpdatedBy     string         `json:"updated_by,omitempty"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// EventType implements the event.Payload interface.
func (*CustomerUpdated) EventType() string { return taxonomy.CustomerUpdated }

// Validate implements the event.Payload interface.
func (p *CustomerUpdated) Validate() error {
	if err := requireUUID("customer_id", p.CustomerID); err != nil {
		return err
	}

	if len(p.FieldsUpdated) == 0 {
		return event.ErrValidation{Field: "fields_updated", Expected: "at least one updated field", Actual: "empty"}
	}

	return requireTime("updated_at", p.UpdatedAt)
}

// CustomerDeactivated is the payload of the "customer.deactivated" event.
type CustomerDeactivated struct {
	CustomerID            uuid.UUID  `json:"customer_id"`
	Reason                string     `json:"reason"`
	DeactivatedBy         string     `json:"deactivated_by,omitempty"`
	DeactivatedAt         time.Time  `json:"deactivated_at"`
	ScheduledDeletionDate *time.Time `json:"scheduled_deletion_date,omitempty"`
}

// EventType implements the event.Payload interface.
func (*CustomerDeactivated) EventType() string { return taxonomy.CustomerDeactivated }

// Validate implements the event.Payload interface.
func (p *CustomerDeactivated) Validate() error {
	if err := requireUUID("customer_id", p.CustomerID); err != nil {
		return err
	}

	if err := requireString("reason", p.Reason); err != nil {
		return err
	}

	return requireTime("deactivated_at", p.DeactivatedAt)
}

// CustomerAddress is the address shape embedded in customer address events.
type CustomerAddress struct {
	AddressID      uuid.UUID `json:"address_id"`
	AddressType    string    `json:"address_type"`
	IsDefault      bool      `json:"is_default"`
	StreetAddress1 string    `json:"street_address_1"`
	StreetAddress2 string    `json:"street_address_2,omitempty"`
	City           string    `json:"city"`
	StateProvince  string    `json:"state_province"`
	PostalCode     string    `json:"postal_code"`
	CountryCode    string    `json:"country_code"`
	PhoneNumber    string    `json:"phone_number,omitempty"`
}

func (a CustomerAddress) validate(prefix string) error {
	if err := requireUUID(prefix+".address_id", a.AddressID); err != nil {
		return err
	}

	if err := requireOneOf(prefix+".address_type", a.AddressType, "billing", "shipping", "both"); err != nil {
		return err
	}

	if err := requireString(prefix+".street_address_1", a.StreetAddress1); err != nil {
		return err
	}

	if err := requireString(prefix+".city", a.City); err != nil {
		return err
	}

	if len(a.CountryCode) != 2 {
		return event.ErrValidation{
			Field:    prefix + ".country_code",
			Expected: "2-letter country code",
			Actual:   "'" + a.CountryCode + "'",
		}
	}

	return nil
}

// CustomerAddressAdded is the payload of the "customer.address_added" event.
type CustomerAddressAdded struct {
	CustomerID uuid.UUID       `json:"customer_id"`
	Address    CustomerAddress `json:"address"`
	AddedAt    time.Time       `json:"added_at"`
}

// EventType implements the event.Payload interface.
func (*CustomerAddressAdded) EventType() string { return taxonomy.CustomerAddressAdded }

// Validate implements the event.Payload interface.
func (p *CustomerAddressAdded) Validate() error {
	if err := requireUUID("customer_id", p.CustomerID); err != nil {
		return err
	}

	if err := p.Address.validate("address"); err != nil {
		return err
	}

	return requireTime("added_at", p.AddedAt)
}

// CustomerEmailVerified is the payload of the "customer.email_verified" event.
type CustomerEmailVerified struct {
	CustomerID         uuid.UUID `json:"customer_id"`
	Email              string    `json:"email"`
	VerifiedAt         time.Time `json:"verified_at"`
	VerificationMethod string    `json:"verification_method"`
}

// EventType implements the event.Payload interface.
func (*CustomerEmailVerified) EventType() string { return taxonomy.CustomerEmailVerified }

// Validate implements the event.Payload interface.
func (p *CustomerEmailVerified) Validate() error {
	if err := requireUUID("customer_id", p.CustomerID); err != nil {
		return err
	}

	if err := requireEmail("email", p.Email); err != nil {
		return err
	}

	if err := requireOneOf("verification_method", p.VerificationMethod, "email", "sms", "manual"); err != nil {
		return err
	}

	return requireTime("verified_at", p.VerifiedAt)
}

// CustomerPasswordChanged is the payload of the
// "customer.credentials_updated" event.
type CustomerPasswordChanged struct {
	CustomerID              uuid.UUID `json:"customer_id"`
	ChangedBy               string    `json:"changed_by"`
	ChangedAt               time.Time `json:"changed_at"`
	RequireLogoutAllDevices bool      `json:"require_logout_all_devices"`
	NotificationSent        bool      `json:"notification_sent"`
}

// EventType implements the event.Payload interface.
func (*CustomerPasswordChanged) EventType() string { return taxonomy.CustomerCredentialsUpdated }

// Validate implements the event.Payload interface.
func (p *CustomerPasswordChanged) Validate() error {
	if err := requireUUID("customer_id", p.CustomerID); err != nil {
		return err
	}

	if err := requireOneOf("changed_by", p.ChangedBy, "customer", "admin", "system"); err != nil {
		return err
	}

	return requireTime("changed_at", p.ChangedAt)
}

// Typed envelope variants for statically-typed construction sites.
type (
	CustomerRegisteredEvent      = event.Envelope[*CustomerRegistered]
	CustomerUpdatedEvent         = event.Envelope[*CustomerUpdated]
	CustomerDeactivatedEvent     = event.Envelope[*CustomerDeactivated]
	CustomerAddressAddedEvent    = event.Envelope[*CustomerAddressAdded]
	CustomerEmailVerifiedEvent   = event.Envelope[*CustomerEmailVerified]
	CustomerPasswordChangedEvent = event.Envelope[*CustomerPasswordChanged]
)

// RegisterCustomer registers the customer event schemas with the registry.
func RegisterCustomer(r registry.Registry) error {
	return registerDefinitions(r,
		definition{taxonomy.CustomerRegistered, func() event.Payload { return new(CustomerRegistered) }},
		definition{taxonomy.CustomerUpdated, func() event.Payload { return new(CustomerUpdated) }},
		definition{taxonomy.CustomerDeactivated, func() event.Payload { return new(CustomerDeactivated) }},
		definition{taxonomy.CustomerAddressAdded, func() event.Payload { return new(CustomerAddressAdded) }},
		definition{taxonomy.CustomerEmailVerified, func() event.Payload { return new(CustomerEmailVerified) }},
		definition{taxonomy.CustomerCredentialsUpdated, func() event.Payload { return new(CustomerPasswordChanged) }},
	)
}
