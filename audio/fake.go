package audio

// FakeContext serves a fixed device list, for tests and headless runs.
type FakeContext struct {
	devices []DeviceInfo
	err     error
}

func NewFakeContext(devices ...DeviceInfo) *FakeContext {
	return &FakeContext{devices: devices}
}

// FailWith makes Devices return err.
func (f *FakeContext) FailWith(err error) *FakeContext {
	f.err = err
	return f
}

func (f *FakeContext) Devices() ([]DeviceInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]DeviceInfo(nil), f.devices...), nil
}

func (f *FakeContext) Close() {}
