//go:build opencl

// Package gpu advances a life field on an OpenCL device.
package gpu

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"github.com/jgillich/go-opencl/cl"

	"gameoflife/internal/life"
)

const lifeKernelSource = `__kernel void life_step(
    const int size,
    __global const uchar* curr,
    __global uchar* next_buffer)
{
    int idx = get_global_id(0);
    if (idx >= size * size) {
        return;
    }
    int x = idx % size;
    int y = idx / size;
    int neighbours = 0;
    for (int dy = -1; dy <= 1; dy++) {
        int yy = y + dy;
        if (yy < 0 || yy >= size) {
            continue;
        }
        for (int dx = -1; dx <= 1; dx++) {
            int xx = x + dx;
            if ((dx == 0 && dy == 0) || xx < 0 || xx >= size) {
                continue;
            }
            neighbours += curr[yy * size + xx];
        }
    }
    uchar cell = curr[idx];
    next_buffer[idx] = (neighbours == 3 || (cell == 1 && neighbours == 2)) ? 1 : 0;
}`

// Solver runs generations on the first GPU found, falling back to a CPU
// OpenCL device.
type Solver struct {
	context    *cl.Context
	queue      *cl.CommandQueue
	program    *cl.Program
	kernel     *cl.Kernel
	currBuf    *cl.MemObject
	nextBuf    *cl.MemObject
	boundCurr  *cl.MemObject
	boundNext  *cl.MemObject
	size       int
	host       []life.Cell
	deviceName string
}

// NewSolver compiles the kernel and allocates device buffers for a
// size x size field.
func NewSolver(size int) (*Solver, error) {
	if size < 1 {
		return nil, fmt.Errorf("gpu: invalid field size %d", size)
	}
	platforms, err := cl.GetPlatforms()
	if err != nil {
		msg := "querying OpenCL platforms"
		if strings.Contains(err.Error(), "-1001") {
			msg += ": no ICD loader reported any platforms; install OpenCL drivers and verify with `clinfo`"
		}
		return nil, fmt.Errorf("%s: %w", msg, err)
	}
	if len(platforms) == 0 {
		return nil, errors.New("no OpenCL platforms available; ensure a vendor driver is installed and detected by `clinfo`")
	}
	device := pickDevice(platforms, cl.DeviceTypeGPU)
	if device == nil {
		device = pickDevice(platforms, cl.DeviceTypeCPU)
	}
	if device == nil {
		return nil, errors.New("no suitable OpenCL devices found")
	}

	s := &Solver{size: size, deviceName: device.Name(), host: make([]life.Cell, size*size)}
	if err := s.init(device); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

func pickDevice(platforms []*cl.Platform, kind cl.DeviceType) *cl.Device {
	for _, p := range platforms {
		devices, err := p.GetDevices(kind)
		if err != nil && err != cl.ErrDeviceNotFound {
			continue
		}
		if len(devices) > 0 {
			return devices[0]
		}
	}
	return nil
}

func (s *Solver) init(device *cl.Device) error {
	var err error
	if s.context, err = cl.CreateContext([]*cl.Device{device}); err != nil {
		return fmt.Errorf("creating OpenCL context: %w", err)
	}
	if s.queue, err = s.context.CreateCommandQueue(device, 0); err != nil {
		return fmt.Errorf("creating OpenCL command queue: %w", err)
	}
	if s.program, err = s.context.CreateProgramWithSource([]string{lifeKernelSource}); err != nil {
		return fmt.Errorf("creating OpenCL program: %w", err)
	}
	if err := s.program.BuildProgram([]*cl.Device{device}, ""); err != nil {
		if buildErr, ok := err.(cl.BuildError); ok {
			return fmt.Errorf("building OpenCL program: %s", string(buildErr))
		}
		return fmt.Errorf("building OpenCL program: %w", err)
	}
	if s.kernel, err = s.program.CreateKernel("life_step"); err != nil {
		return fmt.Errorf("creating OpenCL kernel: %w", err)
	}

	byteSize := len(s.host) * int(unsafe.Sizeof(life.Cell(0)))
	if s.currBuf, err = s.context.CreateEmptyBuffer(cl.MemReadWrite, byteSize); err != nil {
		return fmt.Errorf("allocating current buffer: %w", err)
	}
	if s.nextBuf, err = s.context.CreateEmptyBuffer(cl.MemReadWrite, byteSize); err != nil {
		return fmt.Errorf("allocating next buffer: %w", err)
	}
	if err := s.kernel.SetArgs(int32(s.size), s.currBuf, s.nextBuf); err != nil {
		return fmt.Errorf("setting kernel arguments: %w", err)
	}
	s.boundCurr, s.boundNext = s.currBuf, s.nextBuf
	return nil
}

func (s *Solver) bindBuffers() error {
	if s.boundCurr != s.currBuf {
		if err := s.kernel.SetArgBuffer(1, s.currBuf); err != nil {
			return err
		}
		s.boundCurr = s.currBuf
	}
	if s.boundNext != s.nextBuf {
		if err := s.kernel.SetArgBuffer(2, s.nextBuf); err != nil {
			return err
		}
		s.boundNext = s.nextBuf
	}
	return nil
}

// Step uploads f, advances it steps generations on the device and reads the
// result back into f.
func (s *Solver) Step(f *life.Field, steps int) error {
	if steps <= 0 {
		return nil
	}
	if f.Size() != s.size {
		return fmt.Errorf("gpu: field is %dx%d, solver expects %dx%d", f.Size(), f.Size(), s.size, s.size)
	}
	copy(s.host, f.Snapshot())
	byteLen := len(s.host) * int(unsafe.Sizeof(life.Cell(0)))
	if _, err := s.queue.EnqueueWriteBuffer(s.currBuf, true, 0, byteLen, unsafe.Pointer(&s.host[0]), nil); err != nil {
		return fmt.Errorf("writing current buffer: %w", err)
	}

	global := []int{len(s.host)}
	for step := 0; step < steps; step++ {
		if err := s.bindBuffers(); err != nil {
			return fmt.Errorf("binding buffers: %w", err)
		}
		if _, err := s.queue.EnqueueNDRangeKernel(s.kernel, nil, global, nil, nil); err != nil {
			return fmt.Errorf("enqueueing kernel: %w", err)
		}
		s.currBuf, s.nextBuf = s.nextBuf, s.currBuf
	}

	if _, err := s.queue.EnqueueReadBuffer(s.currBuf, true, 0, byteLen, unsafe.Pointer(&s.host[0]), nil); err != nil {
		return fmt.Errorf("reading current buffer: %w", err)
	}
	return f.Load(s.host)
}

// Close releases every device object.
func (s *Solver) Close() {
	if s.nextBuf != nil {
		s.nextBuf.Release()
		s.nextBuf = nil
	}
	if s.currBuf != nil {
		s.currBuf.Release()
		s.currBuf = nil
	}
	if s.kernel != nil {
		s.kernel.Release()
		s.kernel = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
	if s.queue != nil {
		s.queue.Release()
		s.queue = nil
	}
	if s.context != nil {
		s.context.Release()
		s.context = nil
	}
}

// DeviceName reports the OpenCL device in use.
func (s *Solver) DeviceName() string {
	return s.deviceName
}
