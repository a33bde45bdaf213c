package configure

const (
	flagUsername      = "username"
	flagUsernameShort = "u"
	flagUsernameUsage = "Specify the administrative username for the MongoDB instance"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "Specify the administrative password for the MongoDB instance"
)
