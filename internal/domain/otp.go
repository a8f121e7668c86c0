package domain

// OTPRecord is the DynamoDB shape of a one-time code.
// PK: otp_key. ExpiresAt is a Unix timestamp used as the table TTL; the
// millisecond deadline is what Consume compares against.
type OTPRecord struct {
	Key             string `dynamodbav:"otp_key"`
	Code            string `dynamodbav:"code"`
	ExpiresAt       int64  `dynamodbav:"expires_at"` // TTL (Unix seconds)
	ExpiresAtMillis int64  `dynamodbav:"expires_at_ms"`
}
