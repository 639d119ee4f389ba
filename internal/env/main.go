package env

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Env struct {
	AppEnv               string `mapstructure:"APP_ENV" default:"dev"`
	AppPort              string `mapstructure:"APP_PORT"`
	MongoDbConnectionUrl string `mapstructure:"MONGODB_CONNECTION_URL" required:"true"`
	DbName               string `mapstructure:"DB_NAME"`

	JwtSecret      string `mapstructure:"JWT_SECRET" required:"true"`
	AuthCookieName string `mapstructure:"AUTH_COOKIE_NAME"`
}

func NewEnv(fileName string) (*Env, error) {
	env := Env{}

	viper.SetConfigFile(fileName)

	err := viper.ReadInConfig()
	if err != nil {
		logrus.Error("Env file not found")
		return nil, err
	}

	err = viper.Unmarshal(&env)
	if err != nil {
		logrus.Errorf("Unable to load environment from: %s", fileName)
		return nil, err
	}

	if env.AuthCookieName == "" {
		env.AuthCookieName = "hw-auth-token"
	}

	return &env, nil
}
