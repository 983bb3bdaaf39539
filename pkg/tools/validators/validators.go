package validators

import "regexp"

const (
	passwordValRegexStr = "^.{6,24}$"
	emailValRegexStr    = "^[^\\s@]+@[^\\s@]+\\.[^\\s@]+$"
	usernameValRegexStr = "^[a-zA-Z0-9]{3,32}$"
)

var (
	passwordRegex = regexp.MustCompile(passwordValRegexStr)
	emailRegex    = regexp.MustCompile(emailValRegexStr)
	usernameRegex = regexp.MustCompile(usernameValRegexStr)
)

func Password(password string) bool {
	return passwordRegex.MatchString(password)
}

func Email(email string) bool {
	return emailRegex.MatchString(email)
}

// Username accepts 3 to 32 ASCII letters or digits
func Username(username string) bool {
	return usernameRegex.MatchString(username)
}
