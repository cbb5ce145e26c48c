package blehid

import (
	"tinygo.org/x/bluetooth"

	"stampkey-go/errcode"
	"stampkey-go/x/timex"
)

// Config identifies the keyboard to hosts.
type Config struct {
	DeviceName   string
	Manufacturer string
}

// GATT owns the HID, battery and device information services.
type GATT struct {
	adapter *bluetooth.Adapter
	adv     *bluetooth.Advertisement

	report  bluetooth.Characteristic
	battery bluetooth.Characteristic
	control bluetooth.Characteristic
	mode    bluetooth.Characteristic
}

// Start enables the adapter, registers the services and begins advertising.
// The returned Keyboard tracks the connection through the adapter callback
// and paces reports on clk.
func Start(adapter *bluetooth.Adapter, cfg Config, clk timex.Clock) (*Keyboard, error) {
	g := &GATT{adapter: adapter}
	kb := NewKeyboard(g, clk)

	adapter.SetConnectHandler(func(_ bluetooth.Device, connected bool) {
		kb.SetConnected(connected)
		if !connected && g.adv != nil {
			// Peripheral advertising stops on connect; resume for the next host.
			_ = g.adv.Start()
		}
	})

	if err := adapter.Enable(); err != nil {
		return nil, errcode.Wrap(errcode.NotReady, "blehid.Enable", err)
	}
	if err := g.addServices(cfg); err != nil {
		return nil, errcode.Wrap(errcode.NotReady, "blehid.AddService", err)
	}

	g.adv = adapter.DefaultAdvertisement()
	if err := g.adv.Configure(bluetooth.AdvertisementOptions{
		LocalName:    cfg.DeviceName,
		ServiceUUIDs: []bluetooth.UUID{bluetooth.ServiceUUIDHumanInterfaceDevice},
	}); err != nil {
		return nil, errcode.Wrap(errcode.NotReady, "blehid.Advertise", err)
	}
	if err := g.adv.Start(); err != nil {
		return nil, errcode.Wrap(errcode.NotReady, "blehid.Advertise", err)
	}
	return kb, nil
}

func (g *GATT) addServices(cfg Config) error {
	if err := g.adapter.AddService(&bluetooth.Service{
		UUID: bluetooth.ServiceUUIDHumanInterfaceDevice,
		Characteristics: []bluetooth.CharacteristicConfig{
			{
				UUID:  bluetooth.CharacteristicUUIDHIDInformation,
				Value: hidInformation,
				Flags: bluetooth.CharacteristicReadPermission,
			},
			{
				UUID:  bluetooth.CharacteristicUUIDReportMap,
				Value: reportMap,
				Flags: bluetooth.CharacteristicReadPermission,
			},
			{
				Handle: &g.control,
				UUID:   bluetooth.CharacteristicUUIDHIDControlPoint,
				Value:  []byte{0},
				Flags:  bluetooth.CharacteristicWriteWithoutResponsePermission,
			},
			{
				Handle: &g.mode,
				UUID:   bluetooth.CharacteristicUUIDProtocolMode,
				Value:  []byte{protocolModeReport},
				Flags:  bluetooth.CharacteristicReadPermission | bluetooth.CharacteristicWriteWithoutResponsePermission,
			},
			{
				Handle: &g.report,
				UUID:   bluetooth.CharacteristicUUIDReport,
				Value:  make([]byte, ReportLen),
				Flags:  bluetooth.CharacteristicReadPermission | bluetooth.CharacteristicNotifyPermission,
			},
		},
	}); err != nil {
		return err
	}

	if err := g.adapter.AddService(&bluetooth.Service{
		UUID: bluetooth.ServiceUUIDBattery,
		Characteristics: []bluetooth.CharacteristicConfig{
			{
				Handle: &g.battery,
				UUID:   bluetooth.CharacteristicUUIDBatteryLevel,
				Value:  []byte{100},
				Flags:  bluetooth.CharacteristicReadPermission | bluetooth.CharacteristicNotifyPermission,
			},
		},
	}); err != nil {
		return err
	}

	return g.adapter.AddService(&bluetooth.Service{
		UUID: bluetooth.ServiceUUIDDeviceInformation,
		Characteristics: []bluetooth.CharacteristicConfig{
			{
				UUID:  bluetooth.CharacteristicUUIDManufacturerNameString,
				Value: []byte(cfg.Manufacturer),
				Flags: bluetooth.CharacteristicReadPermission,
			},
		},
	})
}

func (g *GATT) SendReport(report []byte) error {
	_, err := g.report.Write(report)
	return err
}

func (g *GATT) SendBattery(pct uint8) error {
	_, err := g.battery.Write([]byte{pct})
	return err
}
