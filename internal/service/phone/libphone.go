package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
	"go.uber.org/zap"
)

// DefaultRegion is used to parse numbers written without a country code.
const DefaultRegion = "GR"

// LibPhoneValidator checks numbers against libphonenumber metadata.
type LibPhoneValidator struct {
	region string
	logger *zap.Logger
}

// NewLibPhoneValidator creates a validator for the given region.
func NewLibPhoneValidator(region string, logger *zap.Logger) *LibPhoneValidator {
	if region == "" {
		region = DefaultRegion
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LibPhoneValidator{
		region: strings.ToUpper(region),
		logger: logger,
	}
}

func (v *LibPhoneValidator) Name() string {
	return "libphonenumber"
}

func (v *LibPhoneValidator) IsValid(digits string) bool {
	number := strings.ReplaceAll(digits, " ", "")
	if number == "" {
		return false
	}

	parsed, err := phonenumbers.Parse(number, v.region)
	if err != nil {
		v.logger.Debug("Phone number unparseable", zap.String("number", number), zap.Error(err))
		return false
	}

	valid := phonenumbers.IsValidNumber(parsed)
	v.logger.Debug("Phone number checked",
		zap.String("number", number),
		zap.String("region", v.region),
		zap.Bool("valid", valid))
	return valid
}

// FormatE164 renders digits in E.164 form, or returns "" when they cannot be parsed.
func FormatE164(digits, region string) string {
	number := strings.ReplaceAll(digits, " ", "")
	if number == "" {
		return ""
	}
	if region == "" {
		region = DefaultRegion
	}

	parsed, err := phonenumbers.Parse(number, strings.ToUpper(region))
	if err != nil {
		return ""
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
