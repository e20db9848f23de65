package dashboard

import (
	"go.uber.org/zap"

	"HubPanel/internal/poweredup"
)

// Registry виджеты устройств по имени порта в порядке подключения
type Registry struct {
	log     *zap.Logger
	order   []string
	widgets map[string]Widget
}

// NewRegistry создает пустой реестр
func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		log:     log,
		widgets: make(map[string]Widget),
	}
}

// Attach создает виджет для устройства. Если порт уже занят, старый виджет
// закрывается и возвращается как replaced.
func (r *Registry) Attach(device poweredup.Peripheral) (w Widget, replaced Widget) {
	w = NewWidget(device, r.log)
	port := w.Port()

	if old, exists := r.widgets[port]; exists {
		old.base().close()
		replaced = old
		r.removeFromOrder(port)
	}

	r.widgets[port] = w
	r.order = append(r.order, port)

	r.log.Info("Устройство добавлено",
		zap.String("port", port),
		zap.String("type", w.TypeName()),
		zap.Stringer("widget", w.Kind()),
	)
	return w, replaced
}

// Detach закрывает и удаляет виджет порта. Неизвестный порт пропускается.
func (r *Registry) Detach(port string) (Widget, bool) {
	w, exists := r.widgets[port]
	if !exists {
		return nil, false
	}

	w.base().close()
	delete(r.widgets, port)
	r.removeFromOrder(port)

	r.log.Info("Устройство удалено", zap.String("port", port))
	return w, true
}

// Get возвращает виджет порта
func (r *Registry) Get(port string) (Widget, bool) {
	w, ok := r.widgets[port]
	return w, ok
}

// Widgets возвращает виджеты в порядке подключения
func (r *Registry) Widgets() []Widget {
	result := make([]Widget, 0, len(r.order))
	for _, port := range r.order {
		result = append(result, r.widgets[port])
	}
	return result
}

// Len возвращает число виджетов
func (r *Registry) Len() int {
	return len(r.widgets)
}

// Clear закрывает и удаляет все виджеты, возвращая удаленные
func (r *Registry) Clear() []Widget {
	removed := r.Widgets()
	for _, w := range removed {
		w.base().close()
	}
	r.order = nil
	r.widgets = make(map[string]Widget)
	return removed
}

func (r *Registry) removeFromOrder(port string) {
	for i, p := range r.order {
		if p == port {
			r.order = append(r.order[:i], r.order[i+1:]...)
			return
		}
	}
}
