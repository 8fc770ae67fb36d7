package service

// LuhnValid reports whether number is all digits, at least two long, and
// satisfies the Luhn checksum.
func LuhnValid(number string) bool {
	if len(number) < 2 {
		return false
	}
	sum := 0
	for i := 0; i < len(number); i++ {
		c := number[len(number)-1-i]
		if c < '0' || c > '9' {
			return false
		}
		digit := int(c - '0')

		// Double every second digit from the right, skipping the check digit itself
		if i%2 == 1 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}
	return sum%10 == 0
}

// luhnCheckDigit returns the digit that completes body into a Luhn-valid
// number. body must be all digits and must not include the check position.
func luhnCheckDigit(body []byte) byte {
	sum := 0
	for i := 0; i < len(body); i++ {
		digit := int(body[len(body)-1-i] - '0')
		if i%2 == 0 {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
	}
	return byte('0' + (10-(sum%10))%10)
}

// completeLuhn appends the check digit to body.
func completeLuhn(body []byte) string {
	number := make([]byte, len(body)+1)
	copy(number, body)
	number[len(body)] = luhnCheckDigit(body)
	return string(number)
}
