package configs

// MQ configures the AMQP broker that receives ad.played events. Leaving
// URL empty disables publishing.
type MQ struct {
	URL        string `env:"URL"`
	Exchange   string `env:"EXCHANGE" envDefault:"movo.ads"`
	RoutingKey string `env:"ROUTING_KEY" envDefault:"ad.played"`
}

func (c MQ) Enabled() bool { return c.URL != "" }
