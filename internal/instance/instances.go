package instance

import (
	"github.com/washtime/api/internal/svc/auth"
	"github.com/washtime/api/internal/svc/car"
	"github.com/washtime/api/internal/svc/prometheus"
	"github.com/washtime/api/internal/svc/rpc"
	"github.com/washtime/api/internal/svc/timetable"
	"github.com/washtime/api/internal/svc/user"
)

// Instances holds the process-wide service handles. They are created
// once at startup and shared read-only across concurrent requests.
type Instances struct {
	RPC        rpc.Instance
	User       user.Instance
	Auth       auth.Instance
	Car        car.Instance
	TimeTable  timetable.Instance
	Prometheus prometheus.Instance
}
