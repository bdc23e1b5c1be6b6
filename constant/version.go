package constant

const Name = "realm"

var (
	Version   = "1.0.0"
	BuildTime = "unknown time"
)
