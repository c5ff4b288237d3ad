package bus

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// hostInit loads the periph host drivers exactly once per process.
var hostInit sync.Once

// Open acquires an I2C bus handle through periph.io. The name is a periph
// bus reference: a number ("1"), a device path ("/dev/i2c-1"), or "" for
// the host's default bus.
func Open(name string) (Bus, error) {
	var initErr error
	hostInit.Do(func() {
		_, initErr = host.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize host drivers: %w", initErr)
	}

	b, err := i2creg.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open i2c bus %q: %w", name, err)
	}
	return &periphBus{bus: b}, nil
}

// periphBus adapts a periph i2c.BusCloser to the Bus interface.
type periphBus struct {
	mu     sync.Mutex
	bus    i2c.BusCloser
	closed bool
}

func (p *periphBus) Write(addr uint16, data []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrClosed
	}
	return p.bus.Tx(addr, data, nil)
}

func (p *periphBus) Read(addr uint16, length int) ([]byte, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil, ErrClosed
	}
	buf := make([]byte, length)
	if err := p.bus.Tx(addr, nil, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func (p *periphBus) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true
	return p.bus.Close()
}

// Compile-time interface satisfaction check.
var _ Bus = (*periphBus)(nil)
