package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Load reads the file at path (any format viper understands) on top of
// base. Keys missing from the file keep their base values.
func Load(path string, base Settings) (Settings, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return base, fmt.Errorf("read config %s: %w", path, err)
	}
	return decode(v, base)
}

func decode(v *viper.Viper, base Settings) (Settings, error) {
	s := base
	if err := v.Unmarshal(&s); err != nil {
		return base, fmt.Errorf("decode config %s: %w", v.ConfigFileUsed(), err)
	}
	if err := s.Validate(); err != nil {
		return base, fmt.Errorf("config %s: %w", v.ConfigFileUsed(), err)
	}
	return s, nil
}

// Watcher re-reads a config file whenever it is written. Decoded settings
// arrive on Changes; the receiver applies them on its own goroutine.
type Watcher struct {
	v       *viper.Viper
	base    Settings
	log     logrus.FieldLogger
	changes chan Settings
}

// Watch starts watching path. base supplies values the file leaves out.
func Watch(path string, base Settings, log logrus.FieldLogger) (*Watcher, error) {
	w, err := newWatcher(path, base, log)
	if err != nil {
		return nil, err
	}
	w.v.OnConfigChange(w.onChange)
	w.v.WatchConfig()
	return w, nil
}

func newWatcher(path string, base Settings, log logrus.FieldLogger) (*Watcher, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	return &Watcher{
		v:       v,
		base:    base,
		log:     log.WithField("config", path),
		changes: make(chan Settings, 1),
	}, nil
}

// Changes delivers reloaded settings. Only the latest unread value is kept.
func (w *Watcher) Changes() <-chan Settings {
	return w.changes
}

func (w *Watcher) onChange(e fsnotify.Event) {
	if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
		return
	}
	s, err := decode(w.v, w.base)
	if err != nil {
		w.log.WithError(err).Warn("config reload rejected, keeping previous settings")
		return
	}
	w.log.WithField("op", e.Op.String()).Info("config reloaded")
	w.publish(s)
}

func (w *Watcher) publish(s Settings) {
	select {
	case <-w.changes:
	default:
	}
	w.changes <- s
}
