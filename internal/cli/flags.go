package cli

const (
	flagProfile      = "profile"
	flagProfileUsage = "Specify your profile"

	flagMongoDBHost      = "db-host"
	flagMongoDBHostUsage = "Specify the host of the replication kit's MongoDB instance"

	flagMongoDBPort      = "db-port"
	flagMongoDBPortUsage = "Specify the port of the replication kit's MongoDB instance"

	flagAuthSource      = "auth-source"
	flagAuthSourceUsage = "Specify the database to authenticate against"
)
