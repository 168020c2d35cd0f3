// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package catalog

import (
	"rescribe.xyz/mathsheet/svg"
)

func line(start, end int, width float64, pts ...svg.Mark) func() (string, error) {
	return func() (string, error) {
		return svg.NumberLine(svg.NumberLineOpts{Start: start, End: end, Width: width, Points: pts})
	}
}

func multi(start, end int, width float64, pts ...svg.Mark) func() (string, error) {
	return func() (string, error) {
		return svg.NumberLine(svg.NumberLineOpts{Start: start, End: end, Width: width, Height: 80, Points: pts, Cycle: true})
	}
}

func segment(start, end int, width float64, pts ...svg.Mark) func() (string, error) {
	return func() (string, error) {
		return svg.NumberLineSegment(svg.NumberLineOpts{Start: start, End: end, Width: width, Points: pts})
	}
}

func letters(l ...svg.Letter) func() (string, error) {
	return func() (string, error) {
		return svg.NumberLineLetters(l, 0, 0)
	}
}

func blankTable() (string, error) {
	return svg.Table(svg.TableOpts{
		Headers:   []string{"项目", "A", "B", "C"},
		Rows:      [][]string{{}, {}},
		RowHeight: 36.7,
	})
}

func mk(v float64, l string) svg.Mark {
	return svg.Mark{Value: v, Label: l}
}

func exercisesSet() Set {
	fold := func() (string, error) {
		return svg.NumberLineFold(svg.FoldOpts{Start: -3, End: 7, Points: []svg.Mark{mk(-1, "A"), mk(5, "B")}})
	}
	triangle := func() (string, error) {
		return svg.TriangleOnAxis(svg.TriangleOpts{Start: -2, End: 5, At: 0, Side: 1})
	}
	return Set{
		Name:  "exercises",
		About: "worked examples and their first exercises",
		Figures: []Figure{
			{"t1_example.svg", segment(-5, 15, 500, mk(-2, "B"), mk(10, "A"))},
			{"t1_train.svg", segment(-5, 15, 500, mk(-2, "B"), mk(10, "A"))},
			{"t2_example.svg", triangle},
			{"t2_train.svg", triangle},
			{"t3_example.svg", letters(
				svg.Letter{At: 0.15, Below: "a"}, svg.Letter{At: 0.35, Below: "b"},
				svg.Letter{At: 0.55, Below: "0"}, svg.Letter{At: 0.75, Below: "1"})},
			{"t3_train.svg", line(-5, 5, 0, mk(-4, ""), mk(-1.5, ""), mk(0, "0"), mk(2.5, ""))},
			{"t4_example.svg", line(-5, 5, 0, mk(-3, "a"), mk(2, "b"))},
			{"t4_train.svg", line(-5, 5, 0, mk(-3, "a"), mk(2, "b"))},
			{"t5_example.svg", line(-4, 4, 0, mk(-2, ""), mk(1, ""))},
			{"t5_train.svg", line(-4, 4, 0, mk(-2, "-2"), mk(1, "1"))},
			{"t6_example.svg", blankTable},
			{"t7_example.svg", func() (string, error) {
				return svg.Coordinate(svg.CoordOpts{
					XMin: -3, XMax: 3, YMin: -3, YMax: 3,
					Points: []svg.NamedPoint{{Label: "P", X: 1, Y: 2}, {Label: "Q", X: -1, Y: -1}},
				})
			}},
			{"t8_example.svg", line(-5, 5, 0)},
			{"t9_example.svg", static(func() string { return svg.Rectangle(100, 60, []string{"1", "2", "3", "4"}) })},
			{"t10_example.svg", line(-3, 3, 0, mk(0, "0"), mk(1, "1"))},
			{"t11_example.svg", line(-5, 5, 0)},
			{"t12_example.svg", fold},
			{"t12_train.svg", fold},
			{"t13_example.svg", segment(-10, 10, 500, mk(-6, "A"), mk(4, "B"))},
			{"t13_train.svg", segment(-10, 10, 500, mk(-6, "A"), mk(4, "B"))},
			{"t16_example.svg", static(func() string { return svg.Rectangle(120, 80, []string{"客厅", "次卧", "主卧", "厨房"}) })},
			{"t17_example.svg", blankTable},
			{"t18_example.svg", line(-5, 5, 0, mk(2, "x"))},
			{"t19_example.svg", static(func() string { return svg.Gear(1) })},
			{"t19_train.svg", static(func() string { return svg.Gear(2) })},
			{"t20_example.svg", blankTable},
			{"t21_example.svg", line(-3, 3, 0, mk(0, "0"))},
			{"t22_example.svg", letters(svg.Letter{At: 0.2, Below: "a"}, svg.Letter{At: 0.5, Below: "0"}, svg.Letter{At: 0.8, Below: "b"})},
			{"t22_train.svg", letters(svg.Letter{At: 0.2, Below: "a"}, svg.Letter{At: 0.5, Below: "0"}, svg.Letter{At: 0.8, Below: "b"})},
			{"t23_example.svg", letters(
				svg.Letter{At: 0.15, Below: "a"}, svg.Letter{At: 0.4, Below: "0"},
				svg.Letter{At: 0.65, Below: "b"}, svg.Letter{At: 0.9, Below: "c"})},
			{"t23_train.svg", line(-5, 5, 0, mk(-3, ""), mk(0, "0"), mk(2, ""))},
			{"t24_example.svg", static(func() string { return svg.Gear(3) })},
			{"t25_example.svg", line(-5, 5, 0)},
			{"t26_example.svg", blankTable},
			{"t27_example.svg", line(-5, 5, 0, mk(-2, ""), mk(3, ""))},
			{"t27_train.svg", line(-5, 5, 0, mk(-2, "-2"), mk(3, "3"))},
		},
	}
}

func trainingSet() Set {
	return Set{
		Name:  "training",
		About: "further exercises",
		Figures: []Figure{
			{"t1_train_1.svg", multi(-5, 15, 500, mk(-2, "B"), mk(10, "A"))},
			{"t1_train_2.svg", multi(-3, 8, 450, mk(0, "P"), mk(5, "Q"))},
			{"t2_train_1.svg", func() (string, error) {
				return svg.TriangleOnAxis(svg.TriangleOpts{Start: -2, End: 5, At: 0, Side: 1, Rolled: true, Height: 150})
			}},
			{"t3_train_1.svg", multi(-5, 5, 450, mk(-3, "a"), mk(0, "0"), mk(2, "b"))},
			{"t4_train_1.svg", multi(-5, 5, 450, mk(-3, "a"), mk(2, "b"))},
			{"t5_train_1.svg", func() (string, error) {
				return svg.NumberLineLetters([]svg.Letter{
					{At: 0.5, Below: "0", Tick: true},
					{At: 0.15, Above: "A", Point: "point"},
					{At: 0.75, Above: "B", Point: "point-blue"},
					{At: 0.5, Above: "C", Point: "point-green"},
				}, 450, 80)
			}},
			{"t5_train_2.svg", segment(-1, 7, 400, mk(1, "1"), mk(5, "5"))},
			{"t7_train_1.svg", func() (string, error) {
				return svg.Table(svg.TableOpts{
					Headers:  []string{"星期", "一", "二", "三", "四", "五", "六", "日"},
					Rows:     [][]string{{"增减", "+10", "-12", "-4", "+8", "-1", "+6", "0"}},
					ColWidth: 50,
					Signed:   true,
				})
			}},
			{"t7_train_2.svg", func() (string, error) {
				return svg.Table(svg.TableOpts{
					Headers: []string{"日期", "计划", "实际", "差额"},
					Rows: [][]string{
						{"周一", "180", "175", "-5"},
						{"周二", "180", "186", "+6"},
					},
					ColWidth: 80,
					Signed:   true,
				})
			}},
			{"t12_train_1.svg", func() (string, error) {
				return svg.NumberLineFold(svg.FoldOpts{
					Start: -2, End: 7, Width: 450,
					Points: []svg.Mark{mk(0, "A"), mk(5, "B"), mk(2, "C")},
				})
			}},
			{"t12_train_2.svg", func() (string, error) {
				return svg.NumberLineFold(svg.FoldOpts{Start: -6, End: 6, Fold: 2, Paper: true, Width: 500, Height: 120})
			}},
			{"t13_train_1.svg", letters(
				svg.Letter{At: 0.2, Above: "A", Below: "-2", Point: "point"},
				svg.Letter{At: 0.45, Above: "O", Below: "0", Point: "point-blue"},
				svg.Letter{At: 0.8, Above: "B", Below: "4", Point: "point"})},
			{"t13_train_2.svg", multi(-5, 6, 450, mk(-2, "A"), mk(0, "O"), mk(4, "B"))},
			{"t19_train_1.svg", func() (string, error) { return svg.GoPieces(3) }},
			{"t22_train_1.svg", multi(-5, 5, 450, mk(-3, "a"), mk(0, "0"), mk(1, "c"), mk(3, "b"))},
			{"t23_train_1.svg", multi(-4, 6, 450, mk(-2, "-2"), mk(4, "4"))},
			{"t27_train_1.svg", multi(-5, 5, 450, mk(-2, "-2"), mk(3, "3"))},
		},
	}
}

func practiceSet() Set {
	def := func(symbol, meaning, example string) func() (string, error) {
		return static(func() string { return svg.Definition(symbol, meaning, example) })
	}
	formulas := func(title string, f ...string) func() (string, error) {
		return static(func() string { return svg.FormulaBox(title, f) })
	}
	steps := func(s ...string) func() (string, error) {
		return static(func() string { return svg.Steps(s) })
	}
	return Set{
		Name:  "practice",
		About: "definitions, formulas and working for the remaining exercises",
		Figures: []Figure{
			{"t6_train_1.svg", def("a⊙b", "= a(a+b) - 1", "(1⊙2)⊙3 = ?")},
			{"t6_train_2.svg", formulas("组合数定义", "定义：C_n^m = n!/(m!(n-m)!)", "例：C_6^2 = 6×5/(2×1) = 15")},
			{"t8_train_1.svg", steps("将小数转化为分数", "互为相反数的先相加得0", "分母相同的分数先相加", "整数部分和分数部分分别相加")},
			{"t9_train_1.svg", func() (string, error) { return svg.FractionSequence(5) }},
			{"t9_train_2.svg", formulas("裂项公式", "1/(n(n+1)) = 1/n - 1/(n+1)", "裂项相消，剩首尾")},
			{"t10_train_1.svg", formulas("运算技巧", "a × 1/a = 1 (倒数关系)", "分配律：a(b+c) = ab + ac")},
			{"t11_train_1.svg", steps("先算乘方：(-1)⁶ = 1，(-3)³ = -27", "再算括号内：0.5 - ⅔ = -⅙", "然后乘除", "最后加减")},
			{"t16_train_1.svg", formulas("几何公式", "面积 = 长 × 宽", "周长 = 2(长 + 宽)")},
			{"t17_train_1.svg", steps("写出代数式", "代入已知值", "按运算顺序计算", "得出结果")},
			{"t18_train_1.svg", static(func() string {
				return svg.Derivation("4(a+b) - 2(a+b)", "整体", "(4-2)(a+b) = 2(a+b)", [2]float64{20, 50}, [2]float64{88, 50})
			})},
			{"t20_train_1.svg", def("C_n^m", "= n(n-1)...(n-m+1)/(m!)", "C_8^3 = 56")},
			{"t21_train_1.svg", formulas("整体思想", "将 (a+b) 看作整体", "(a-c) + (c-d) = a-d", "利用整体关系化简")},
			{"t24_train_1.svg", def("(a,b)", "有趣数对：a-b=2ab", "(2, 0.4) → 2-0.4=2×2×0.4")},
			{"t25_train_1.svg", static(func() string {
				return svg.Working("½(2x-1) + ⅙(2x-1) + ⅓(2x-1) = 5", "合并系数：(½ + ⅙ + ⅓)(2x-1) = 1·(2x-1) = 5")
			})},
			{"t26_train_1.svg", formulas("裂项相消", "x(1 - 1/2)(1 - 1/3)...(1 - 1/23) = 22", "提取x，括号内裂项相消")},
		},
	}
}
