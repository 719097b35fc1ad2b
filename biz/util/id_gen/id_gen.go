package id_gen

import (
	"os"
	"strconv"
	"strings"
	"time"

	"project_management/be/biz/util/ip"

	"github.com/bytedance/gopkg/lang/fastrand"
)

var idgen = NewIDGenerator(10)

// NewID returns a log id: base36 millis, host ipv4 hex, pid, base36 random.
func NewID() string {
	return idgen.NewID()
}

// IDGenerator pre-computes ids in a background goroutine until Stop.
type IDGenerator struct {
	pool <-chan string
	stop chan struct{}
}

func NewIDGenerator(maxSize int) *IDGenerator {
	stop := make(chan struct{})
	return &IDGenerator{
		pool: newPool(maxSize, stop),
		stop: stop,
	}
}

func (g *IDGenerator) Stop() {
	select {
	case <-g.stop:
	default:
		close(g.stop)
	}
}

func (g *IDGenerator) NewID() string {
	return <-g.pool
}

func newPool(size int, stop chan struct{}) <-chan string {
	pool := make(chan string, size)
	pid := strconv.Itoa(os.Getpid())

	go func() {
		for {
			select {
			case <-stop:
				return
			case pool <- build(pid):
			}
		}
	}()

	return pool
}

func build(pid string) string {
	var sb strings.Builder
	sb.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 36))
	sb.WriteString(ip.IPv4Hex())
	sb.WriteString(pid)
	sb.WriteString(strconv.FormatUint(fastrand.Uint64(), 36))
	return sb.String()
}
