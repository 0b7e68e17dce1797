package domain

// SiteInfo holds the firm's public contact details
type SiteInfo struct {
	Name      string  `yaml:"name" json:"name"`
	LegalName string  `yaml:"legalName" json:"legalName"`
	Domain    string  `yaml:"domain" json:"domain"`
	URL       string  `yaml:"url" json:"url"`
	Phone     string  `yaml:"phone" json:"phone"`
	Email     string  `yaml:"email" json:"email"`
	Hours     string  `yaml:"hours" json:"hours"`
	Address   Address `yaml:"address" json:"address"`
}

type Address struct {
	Street     string `yaml:"street" json:"street"`
	City       string `yaml:"city" json:"city"`
	Province   string `yaml:"province" json:"province"`
	PostalCode string `yaml:"postalCode" json:"postalCode"`
	Country    string `yaml:"country" json:"country"`
}

// NoReplyAddress is the sender used for outbound site mail.
func (s SiteInfo) NoReplyAddress() string {
	return s.Name + " <noreply@" + s.Domain + ">"
}

// ServiceArea is one practice area within a service line
type ServiceArea struct {
	Key         string `yaml:"key" json:"key"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Service is a legal service line offered by the firm.
// Key is the translation namespace under "services.".
type Service struct {
	ID               string        `yaml:"id" json:"id"`
	Key              string        `yaml:"key" json:"key"`
	Title            string        `yaml:"title" json:"title"`
	ShortDescription string        `yaml:"shortDescription" json:"shortDescription"`
	Description      string        `yaml:"description" json:"description"`
	Icon             string        `yaml:"icon" json:"icon"`
	Areas            []ServiceArea `yaml:"areas" json:"areas"`
}

// ServiceCatalog is the read-only table of offered services
type ServiceCatalog interface {
	Site() SiteInfo
	List() []Service
	FindByID(id string) (*Service, bool)
}
