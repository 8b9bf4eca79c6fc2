package configuration

type Configuration struct {
	DataFile   string `json:"data_file" usage:"default file for load and save commands"`
	Serve      bool   `json:"serve" usage:"serve the collection over HTTP instead of reading commands from stdin"`
	HttpAddr   string `json:"http_addr" usage:"HTTP address"`
	LogLevel   string `json:"log_level" usage:"log level: debug | info | warn | error"`
	LogJson    bool   `json:"log_json" usage:"log in JSON format"`
	Version    bool   `json:"version" usage:"show version and exit"`
	ShowConfig bool   `json:"show_config" usage:"print config"`
}

func Default() Configuration {
	return Configuration{
		DataFile: "hw.data",
		HttpAddr: "localhost:8080",
		LogLevel: "warn",
	}
}
