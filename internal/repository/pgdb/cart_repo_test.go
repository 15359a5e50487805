package pgdb

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Все мутации корзины обязаны захватывать блокировки в одном порядке:
// сначала строка carts, затем строки cart_lines. Оформление заказа идёт
// тем же порядком (FOR UPDATE на carts, затем удаление строк), поэтому
// запрос, трогающий cart_lines раньше carts, может взаимно заблокироваться
// со встречным оформлением.
func TestDeleteLine_LocksCartRowFirst(t *testing.T) {
	cartsIdx := strings.Index(deleteLineQuery, "UPDATE carts")
	linesIdx := strings.Index(deleteLineQuery, "cart_lines")

	require.NotEqual(t, -1, cartsIdx)
	require.NotEqual(t, -1, linesIdx)
	require.Less(t, cartsIdx, linesIdx,
		"удаление строки должно сначала захватывать строку carts")
}
