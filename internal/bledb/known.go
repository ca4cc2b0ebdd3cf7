package bledb

// knownEntries lists the SIG-assigned UUIDs commonly met on GATT servers.
var knownEntries = []Entry{
	{"1800", "Generic Access", Service},
	{"1801", "Generic Attribute", Service},
	{"180a", "Device Information", Service},
	{"180d", "Heart Rate", Service},
	{"180f", "Battery Service", Service},
	{"1809", "Health Thermometer", Service},
	{"1810", "Blood Pressure", Service},
	{"1812", "Human Interface Device", Service},
	{"1816", "Cycling Speed and Cadence", Service},
	{"181a", "Environmental Sensing", Service},

	{"2a00", "Device Name", Characteristic},
	{"2a01", "Appearance", Characteristic},
	{"2a04", "Peripheral Preferred Connection Parameters", Characteristic},
	{"2a05", "Service Changed", Characteristic},
	{"2a19", "Battery Level", Characteristic},
	{"2a1c", "Temperature Measurement", Characteristic},
	{"2a24", "Model Number String", Characteristic},
	{"2a25", "Serial Number String", Characteristic},
	{"2a26", "Firmware Revision String", Characteristic},
	{"2a27", "Hardware Revision String", Characteristic},
	{"2a28", "Software Revision String", Characteristic},
	{"2a29", "Manufacturer Name String", Characteristic},
	{"2a37", "Heart Rate Measurement", Characteristic},
	{"2a38", "Body Sensor Location", Characteristic},
	{"2a39", "Heart Rate Control Point", Characteristic},
	{"2a6e", "Temperature", Characteristic},
	{"2a6f", "Humidity", Characteristic},

	{"2900", "Characteristic Extended Properties", Descriptor},
	{"2901", "Characteristic User Descriptor", Descriptor},
	{"2902", "Client Characteristic Configuration", Descriptor},
	{"2903", "Server Characteristic Configuration", Descriptor},
	{"2904", "Characteristic Presentation Format", Descriptor},
	{"2905", "Characteristic Aggregate Format", Descriptor},
	{"2906", "Valid Range", Descriptor},
}
