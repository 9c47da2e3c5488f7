/*Package interval subtracts one set of closed integer intervals from another.

  Given an unordered list of "include" intervals and an unordered list of
  "exclude" intervals, Processor computes the sorted, disjoint list of
  intervals covering exactly the positions that lie in some include interval
  and in no exclude interval:

    include: [10, 100] [200, 300] [400, 500]
    exclude: [95, 205] [410, 420]
    result:  [10, 94] [206, 300] [400, 409] [421, 500]

  Each input list is first collapsed into runs of overlapping intervals.  Only
  overlapping intervals merge; [1, 5] and [6, 10] remain two runs.  Every run
  then contributes a pair of Endpoints, and one sweep over the sorted
  endpoints produces the result.

  Coordinates are PosType (int32) values.  Intervals with Start > End cover no
  positions and are ignored.
*/
package interval
